// service/services.go
package service

import (
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"gorm.io/gorm"

	"github.com/923325596/albedo-boot/dao"
	logger "github.com/923325596/albedo-boot/logging"
	"github.com/923325596/albedo-boot/util"
)

type Services struct {
	User IUserService
	Role IRoleService
	Org  IOrgService
}

// InitializeServices wires the DAOs and services. driver may be nil, in which
// case org hierarchy queries use the parent_ids paths only.
func InitializeServices(
	db *gorm.DB,
	driver neo4j.Driver,
	cacheManager util.CacheManager,
	validationUtil *util.ValidationUtil,
	eventBus *util.EventBus,
) (*Services, error) {
	tx := dao.NewTransactor(db)
	resolver := dao.NewAuditResolver(db)
	orgDAO := dao.NewOrgDAO(db)
	roleDAO := dao.NewRoleDAO(db)
	userRepo := dao.NewCachedUserRepository(dao.NewUserDAO(db), cacheManager)

	var graph dao.OrgGraph
	if driver != nil {
		graph = dao.NewOrgGraphDAO(driver)
		logger.Info("Org hierarchy mirrored to Neo4j")
	}

	orgService := NewOrgService(orgDAO, graph, resolver, tx, validationUtil, eventBus)
	roleService := NewRoleService(roleDAO, orgDAO, resolver, tx, validationUtil, eventBus)

	services := &Services{
		User: NewUserService(userRepo, roleService, orgService, resolver, tx, validationUtil, eventBus),
		Role: roleService,
		Org:  orgService,
	}

	return services, nil
}
