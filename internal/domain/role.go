package domain

type Role string

const (
	RoleTop Role = "TOP"
	RoleJgl Role = "JGL"
	RoleMid Role = "MID"
	RoleAdc Role = "ADC"
	RoleSup Role = "SUP"
)

var AllRoles = []Role{RoleTop, RoleJgl, RoleMid, RoleAdc, RoleSup}

func IsValidRole(r Role) bool {
	switch r {
	case RoleTop, RoleJgl, RoleMid, RoleAdc, RoleSup:
		return true
	}
	return false
}
