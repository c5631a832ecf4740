// Package authz 资源写操作鉴权：只有作者本人可以修改或删除。
package authz

import (
	_ "embed"
	"errors"
	"fmt"
	"strconv"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

//go:embed model.conf
var embeddedModel string

const (
	ActionUpdate = "update"
	ActionDelete = "delete"
)

var ErrForbidden = errors.New("you do not have permission to perform this action")

// Owned 有归属者的资源
type Owned interface {
	OwnerID() uint64
}

// Guard 能力校验，通过返回 nil，拒绝返回 ErrForbidden
type Guard interface {
	Authorize(callerID uint64, target Owned, action string) error
}

type CasbinGuard struct {
	enforcer *casbin.SyncedEnforcer
}

func NewGuard() (Guard, error) {
	m, err := model.NewModelFromString(embeddedModel)
	if err != nil {
		return nil, fmt.Errorf("load authz model: %w", err)
	}
	e, err := casbin.NewSyncedEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("create enforcer: %w", err)
	}
	if _, err := e.AddPolicies([][]string{{ActionUpdate}, {ActionDelete}}); err != nil {
		return nil, fmt.Errorf("load authz policy: %w", err)
	}
	return &CasbinGuard{enforcer: e}, nil
}

func (g *CasbinGuard) Authorize(callerID uint64, target Owned, action string) error {
	if callerID == 0 || target == nil {
		return ErrForbidden
	}
	ok, err := g.enforcer.Enforce(
		strconv.FormatUint(callerID, 10),
		strconv.FormatUint(target.OwnerID(), 10),
		action,
	)
	if err != nil {
		return fmt.Errorf("enforce %s: %w", action, err)
	}
	if !ok {
		return ErrForbidden
	}
	return nil
}
