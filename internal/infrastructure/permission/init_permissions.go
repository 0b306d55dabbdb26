package permission

import (
	"fmt"

	"github.com/casbin/casbin/v2"

	"accesshub/internal/shared/logger"
)

// InitCatalogPermissions seeds catalog management policies.
func InitCatalogPermissions(enforcer *casbin.Enforcer, log logger.Interface) error {
	policies := [][]string{
		// Admins manage the catalog
		{"admin", "catalog_item", "create"},
		{"admin", "catalog_item", "read"},
		{"admin", "catalog_item", "update"},
		{"admin", "catalog_item", "deactivate"},

		// Everyone browses the active catalog
		{"user", "catalog_item", "read"},
	}

	return addPolicies(enforcer, log, "catalog", policies)
}

// InitAccessRequestPermissions seeds request and entitlement policies.
func InitAccessRequestPermissions(enforcer *casbin.Enforcer, log logger.Interface) error {
	policies := [][]string{
		// Admins review every request and see every grant
		{"admin", "access_request", "read"},
		{"admin", "access_request", "review"},
		{"admin", "entitlement", "read"},

		// Users submit requests and see their own
		{"user", "access_request", "create"},
		{"user", "access_request", "read"},
		{"user", "entitlement", "read"},
	}

	return addPolicies(enforcer, log, "access request", policies)
}

// InitUserPermissions seeds user management policies.
func InitUserPermissions(enforcer *casbin.Enforcer, log logger.Interface) error {
	policies := [][]string{
		{"admin", "user", "create"},
		{"admin", "user", "read"},
		{"admin", "user", "update"},

		{"user", "user", "read"},
	}

	return addPolicies(enforcer, log, "user", policies)
}

// InitAllPermissions seeds every policy group.
func InitAllPermissions(enforcer *casbin.Enforcer, log logger.Interface) error {
	if err := InitCatalogPermissions(enforcer, log); err != nil {
		return err
	}
	if err := InitAccessRequestPermissions(enforcer, log); err != nil {
		return err
	}
	if err := InitUserPermissions(enforcer, log); err != nil {
		return err
	}

	log.Info("all permissions initialized successfully")
	return nil
}

func addPolicies(enforcer *casbin.Enforcer, log logger.Interface, group string, policies [][]string) error {
	for _, policy := range policies {
		_, err := enforcer.AddPolicy(policy)
		if err != nil {
			log.Errorw("failed to add permission policy",
				"error", err,
				"group", group,
				"role", policy[0],
				"resource", policy[1],
				"action", policy[2])
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w",
				policy[0], policy[1], policy[2], err)
		}
	}

	if err := enforcer.SavePolicy(); err != nil {
		log.Errorw("failed to save permissions", "group", group, "error", err)
		return fmt.Errorf("failed to save %s permissions: %w", group, err)
	}

	log.Infow("permissions initialized", "group", group)
	return nil
}
