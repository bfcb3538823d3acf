package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin     = "admin"      // administrador de la empresa
	RoleUnitAdmin = "unit_admin" // administrador de unidad/planta
	RoleCollector = "collector"  // captura datos de actividad (proveedor/vendor)
	RoleVerifier  = "verifier"   // decide sobre datos enviados
	RolePlatform  = "platform"   // administrador de la plataforma
)

// User representa un usuario del sistema (pertenece a una Company).
type User struct {
	ID           string
	CompanyID    string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, unit_admin, collector, verifier, platform
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
