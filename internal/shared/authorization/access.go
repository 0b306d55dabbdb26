package authorization

// CanAccessResourceByOwnerID reports whether a user may read a resource owned
// by another user. Admins see everything; users only their own.
func CanAccessResourceByOwnerID(userID uint, userRole UserRole, resourceOwnerID uint) bool {
	if userRole.IsAdmin() {
		return true
	}
	return userID == resourceOwnerID
}
