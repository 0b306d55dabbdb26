package permission

import (
	"fmt"

	"gorm.io/gorm"

	"accesshub/internal/shared/logger"
)

// RoleSync mirrors the role column of the users table into casbin grouping
// rules so existing accounts get their role bindings after policy resets.
type RoleSync struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewRoleSync(db *gorm.DB, logger logger.Interface) *RoleSync {
	return &RoleSync{
		db:     db,
		logger: logger,
	}
}

func (s *RoleSync) SyncToCasbin() error {
	s.logger.Info("syncing user roles to casbin")

	query := `
		INSERT INTO casbin_rule (ptype, v0, v1, v2)
		SELECT DISTINCT
			'g',
			CAST(u.id AS CHAR),
			u.role,
			''
		FROM users u
		WHERE NOT EXISTS (
			SELECT 1 FROM casbin_rule cr
			WHERE cr.ptype = 'g'
			AND cr.v0 = CAST(u.id AS CHAR)
			AND cr.v1 = u.role
		)
	`

	result := s.db.Exec(query)
	if result.Error != nil {
		return fmt.Errorf("failed to sync user roles: %w", result.Error)
	}

	if result.RowsAffected > 0 {
		s.logger.Infow("synced user roles to casbin", "count", result.RowsAffected)
	}

	return nil
}
