package models

type UserStatus string
type UserRole string
type SectionType string

const (
	UserStatusActive   UserStatus = "ACTIVO"
	UserStatusInactive UserStatus = "INACTIVO"

	UserRoleAdmin  UserRole = "ADMIN"
	UserRoleBarber UserRole = "BARBERO"
	UserRoleClient UserRole = "CLIENTE"

	SectionTypeService SectionType = "SERVICIO"
	SectionTypeProduct SectionType = "PRODUCTO"
)

// ValidRole reports whether role is one of the closed role set.
func ValidRole(role UserRole) bool {
	switch role {
	case UserRoleAdmin, UserRoleBarber, UserRoleClient:
		return true
	}
	return false
}

// ValidStatus reports whether status is a known account status.
func ValidStatus(status UserStatus) bool {
	return status == UserStatusActive || status == UserStatusInactive
}

// ValidSectionType reports whether t is a known catalog section type.
func ValidSectionType(t SectionType) bool {
	return t == SectionTypeService || t == SectionTypeProduct
}
