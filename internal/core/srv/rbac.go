package srv

import (
	"net/http"

	"github.com/mikespook/gorbac/v2"

	"github.com/arnav-motiramani/daily-doodles/pkg/errors"
	"github.com/arnav-motiramani/daily-doodles/pkg/i18n"
)

const (
	// 定义角色ID
	RoleAdmin  = "role-admin"
	RoleEditor = "role-editor"
	RoleViewer = "role-viewer"

	// 定义权限ID
	PermissionAdmin = "admin"
	PermissionEdit  = "edit"
	PermissionView  = "view"
)

func SetupRBACSrv() *RBACSrv {
	rbac := gorbac.New()

	pAdmin := gorbac.NewStdPermission(PermissionAdmin)
	pEdit := gorbac.NewStdPermission(PermissionEdit)
	pView := gorbac.NewStdPermission(PermissionView)

	roleAdmin := gorbac.NewStdRole(RoleAdmin)
	roleAdmin.Assign(pAdmin)

	roleEditor := gorbac.NewStdRole(RoleEditor)
	roleEditor.Assign(pEdit)

	roleViewer := gorbac.NewStdRole(RoleViewer)
	roleViewer.Assign(pView)

	rbac.Add(roleAdmin)
	rbac.Add(roleEditor)
	rbac.Add(roleViewer)

	// 设置角色继承关系
	rbac.SetParent(RoleEditor, RoleViewer)
	rbac.SetParent(RoleAdmin, RoleEditor)
	return &RBACSrv{
		rbac: rbac,
	}
}

type RBACSrv struct {
	rbac *gorbac.RBAC
}

// CheckPermission 检查角色是否有某权限
func (a *RBACSrv) CheckPermission(roleID, permissionID string) bool {
	return a.rbac.IsGranted(roleID, gorbac.NewStdPermission(permissionID), nil)
}

type RoleObject interface {
	GetUser() (string, error)
}

type LazyRoler struct {
	f      func() (string, error)
	userID string
}

func (s *LazyRoler) GetUser() (string, error) {
	if s.userID == "" {
		var err error
		if s.userID, err = s.f(); err != nil {
			return "", err
		}
	}
	return s.userID, nil
}

func NewRolerWithLazyload(f func() (string, error)) *LazyRoler {
	return &LazyRoler{
		f: f,
	}
}

// Check 检测资源是否属于该用户
func (a *RBACSrv) Check(userID string, obj RoleObject) *errors.Error {
	resourceUser, err := obj.GetUser()
	if err != nil {
		return errors.New("RBACSrv.Check.GetUser", i18n.ERROR_INTERNAL, err)
	}
	if userID != resourceUser {
		return errors.New("RBACSrv.Check.owner", i18n.ERROR_PERMISSION_DENIED, nil).Code(http.StatusForbidden)
	}
	return nil
}
