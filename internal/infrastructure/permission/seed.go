package permission

import (
	"fmt"

	"github.com/shjfcs/foodwatch/internal/domain/record"
	"github.com/shjfcs/foodwatch/internal/shared/authorization"
)

// Each role inherits the role listed after it.
var defaultInheritance = [][2]authorization.Role{
	{authorization.RoleInspector, authorization.RoleClerk},
	{authorization.RoleSupervisor, authorization.RoleInspector},
	{authorization.RoleManager, authorization.RoleSupervisor},
	{authorization.RoleDivisionHead, authorization.RoleManager},
}

type grant struct {
	role    authorization.Role
	kinds   []record.Kind
	actions []record.Action
}

var (
	readWrite  = []record.Action{record.ActionRead, record.ActionCreate, record.ActionUpdate}
	deleteOnly = []record.Action{record.ActionDelete}
)

// Clerks take complaints, inspectors run poisoning investigations,
// supervisors prune child rows and managers remove whole records.
var defaultGrants = []grant{
	{authorization.RoleClerk, []record.Kind{record.KindComplaint, record.KindProduct}, readWrite},
	{authorization.RoleInspector, []record.Kind{record.KindPoisonReport, record.KindContact, record.KindMeal}, readWrite},
	{authorization.RoleSupervisor, []record.Kind{record.KindProduct, record.KindContact, record.KindMeal}, deleteOnly},
	{authorization.RoleManager, []record.Kind{record.KindComplaint, record.KindPoisonReport}, deleteOnly},
}

// SeedDefaults installs the default role policies. Existing rules are kept,
// so seeding is idempotent.
func (e *Enforcer) SeedDefaults() error {
	for _, g := range defaultGrants {
		for _, kind := range g.kinds {
			for _, action := range g.actions {
				if err := e.AddPolicy(g.role.String(), kind.String(), string(action)); err != nil {
					return fmt.Errorf("seed %s %s %s: %w", g.role, kind, action, err)
				}
			}
		}
	}
	if err := e.AddPolicy(authorization.RoleAdmin.String(), "*", "*"); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	for _, pair := range defaultInheritance {
		if err := e.AddInheritance(pair[0].String(), pair[1].String()); err != nil {
			return err
		}
	}

	e.logger.Infow("default permissions seeded")
	return nil
}
