package models

import "github.com/golang-jwt/jwt/v5"

// Application permissions
const (
	// Admin permissions
	PermissionReadAdmin  = "admin:read"
	PermissionWriteAdmin = "admin:write"

	// Validation permissions
	PermissionIBANValidate  = "iban:validate"
	PermissionIBANGenerate  = "iban:generate"
	PermissionCreditorRead  = "creditor:read"
	PermissionCreditorWrite = "creditor:write"
	PermissionCardValidate  = "card:validate"
	PermissionCardTokenize  = "card:tokenize"

	// Directory permissions
	PermissionDirectoryRead   = "directory:read"
	PermissionDirectoryWrite  = "directory:write"
	PermissionDirectoryReload = "directory:reload"
)

type ServiceClaims struct {
	jwt.RegisteredClaims
	ClientID    string   `json:"client_id"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

// HasPermission checks if the claims include a specific permission
func (c *ServiceClaims) HasPermission(permission string) bool {
	for _, p := range c.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// GetDefaultPermissions returns default permissions based on role
func GetDefaultPermissions(role string) []string {
	switch role {
	case "admin":
		return []string{
			PermissionIBANValidate,
			PermissionIBANGenerate,
			PermissionCreditorRead,
			PermissionCreditorWrite,
			PermissionCardValidate,
			PermissionCardTokenize,
			PermissionDirectoryRead,
			PermissionDirectoryWrite,
			PermissionDirectoryReload,
			PermissionReadAdmin,
			PermissionWriteAdmin,
		}
	case "service":
		return []string{
			PermissionIBANValidate,
			PermissionIBANGenerate,
			PermissionCreditorRead,
			PermissionCreditorWrite,
			PermissionCardValidate,
			PermissionCardTokenize,
			PermissionDirectoryRead,
		}
	default:
		return []string{}
	}
}
