package app

import (
	"fmt"

	registryHTTP "github.com/allisson/gatekeeper/internal/registry/http"
	registryRepository "github.com/allisson/gatekeeper/internal/registry/repository"
	registryUsecase "github.com/allisson/gatekeeper/internal/registry/usecase"
)

// GroupRepository returns the group repository based on database driver.
func (c *Container) GroupRepository() (registryUsecase.GroupRepository, error) {
	c.groupRepoInit.Do(func() {
		repo, err := c.initGroupRepository()
		if err != nil {
			c.initErrors["groupRepo"] = err
			return
		}
		c.groupRepo = repo
	})
	if storedErr, exists := c.initErrors["groupRepo"]; exists {
		return nil, storedErr
	}
	return c.groupRepo, nil
}

// RoleRepository returns the role repository based on database driver.
func (c *Container) RoleRepository() (registryUsecase.RoleRepository, error) {
	c.roleRepoInit.Do(func() {
		repo, err := c.initRoleRepository()
		if err != nil {
			c.initErrors["roleRepo"] = err
			return
		}
		c.roleRepo = repo
	})
	if storedErr, exists := c.initErrors["roleRepo"]; exists {
		return nil, storedErr
	}
	return c.roleRepo, nil
}

// ApplicationRepository returns the application repository based on database driver.
func (c *Container) ApplicationRepository() (registryUsecase.ApplicationRepository, error) {
	c.appRepoInit.Do(func() {
		repo, err := c.initApplicationRepository()
		if err != nil {
			c.initErrors["appRepo"] = err
			return
		}
		c.appRepo = repo
	})
	if storedErr, exists := c.initErrors["appRepo"]; exists {
		return nil, storedErr
	}
	return c.appRepo, nil
}

// GroupRoleRepository returns the group role repository based on database driver.
func (c *Container) GroupRoleRepository() (registryUsecase.GroupRoleRepository, error) {
	c.groupRoleRepoInit.Do(func() {
		repo, err := c.initGroupRoleRepository()
		if err != nil {
			c.initErrors["groupRoleRepo"] = err
			return
		}
		c.groupRoleRepo = repo
	})
	if storedErr, exists := c.initErrors["groupRoleRepo"]; exists {
		return nil, storedErr
	}
	return c.groupRoleRepo, nil
}

// GroupUseCase returns the group use case.
func (c *Container) GroupUseCase() (registryUsecase.GroupUseCase, error) {
	c.groupUseCaseInit.Do(func() {
		useCase, err := c.initGroupUseCase()
		if err != nil {
			c.initErrors["groupUseCase"] = err
			return
		}
		c.groupUseCase = useCase
	})
	if storedErr, exists := c.initErrors["groupUseCase"]; exists {
		return nil, storedErr
	}
	return c.groupUseCase, nil
}

// RoleUseCase returns the role use case.
func (c *Container) RoleUseCase() (registryUsecase.RoleUseCase, error) {
	c.roleUseCaseInit.Do(func() {
		useCase, err := c.initRoleUseCase()
		if err != nil {
			c.initErrors["roleUseCase"] = err
			return
		}
		c.roleUseCase = useCase
	})
	if storedErr, exists := c.initErrors["roleUseCase"]; exists {
		return nil, storedErr
	}
	return c.roleUseCase, nil
}

// ApplicationUseCase returns the application use case.
func (c *Container) ApplicationUseCase() (registryUsecase.ApplicationUseCase, error) {
	c.applicationUseCaseInit.Do(func() {
		useCase, err := c.initApplicationUseCase()
		if err != nil {
			c.initErrors["applicationUseCase"] = err
			return
		}
		c.applicationUseCase = useCase
	})
	if storedErr, exists := c.initErrors["applicationUseCase"]; exists {
		return nil, storedErr
	}
	return c.applicationUseCase, nil
}

// GroupHandler returns the group HTTP handler.
func (c *Container) GroupHandler() (*registryHTTP.GroupHandler, error) {
	c.groupHandlerInit.Do(func() {
		useCase, err := c.GroupUseCase()
		if err != nil {
			c.initErrors["groupHandler"] = fmt.Errorf("failed to get group use case for handler: %w", err)
			return
		}
		c.groupHandler = registryHTTP.NewGroupHandler(useCase, c.Logger())
	})
	if storedErr, exists := c.initErrors["groupHandler"]; exists {
		return nil, storedErr
	}
	return c.groupHandler, nil
}

// RoleHandler returns the role HTTP handler.
func (c *Container) RoleHandler() (*registryHTTP.RoleHandler, error) {
	c.roleHandlerInit.Do(func() {
		useCase, err := c.RoleUseCase()
		if err != nil {
			c.initErrors["roleHandler"] = fmt.Errorf("failed to get role use case for handler: %w", err)
			return
		}
		c.roleHandler = registryHTTP.NewRoleHandler(useCase, c.Logger())
	})
	if storedErr, exists := c.initErrors["roleHandler"]; exists {
		return nil, storedErr
	}
	return c.roleHandler, nil
}

// ApplicationHandler returns the application HTTP handler.
func (c *Container) ApplicationHandler() (*registryHTTP.ApplicationHandler, error) {
	c.applicationHandlerInit.Do(func() {
		useCase, err := c.ApplicationUseCase()
		if err != nil {
			c.initErrors["applicationHandler"] = fmt.Errorf("failed to get application use case for handler: %w", err)
			return
		}
		c.applicationHandler = registryHTTP.NewApplicationHandler(useCase, c.Logger())
	})
	if storedErr, exists := c.initErrors["applicationHandler"]; exists {
		return nil, storedErr
	}
	return c.applicationHandler, nil
}

// initGroupRepository creates the group repository instance.
func (c *Container) initGroupRepository() (registryUsecase.GroupRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for group repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return registryRepository.NewMySQLGroupRepository(db), nil
	case "postgres":
		return registryRepository.NewPostgreSQLGroupRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initRoleRepository creates the role repository instance.
func (c *Container) initRoleRepository() (registryUsecase.RoleRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for role repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return registryRepository.NewMySQLRoleRepository(db), nil
	case "postgres":
		return registryRepository.NewPostgreSQLRoleRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initApplicationRepository creates the application repository instance.
func (c *Container) initApplicationRepository() (registryUsecase.ApplicationRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for application repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return registryRepository.NewMySQLApplicationRepository(db), nil
	case "postgres":
		return registryRepository.NewPostgreSQLApplicationRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initGroupRoleRepository creates the group role repository instance.
func (c *Container) initGroupRoleRepository() (registryUsecase.GroupRoleRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for group role repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return registryRepository.NewMySQLGroupRoleRepository(db), nil
	case "postgres":
		return registryRepository.NewPostgreSQLGroupRoleRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initGroupUseCase creates the group use case with all its dependencies.
func (c *Container) initGroupUseCase() (registryUsecase.GroupUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for group use case: %w", err)
	}

	groupRepo, err := c.GroupRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get group repository for group use case: %w", err)
	}

	roleRepo, err := c.RoleRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get role repository for group use case: %w", err)
	}

	appRepo, err := c.ApplicationRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get application repository for group use case: %w", err)
	}

	groupRoleRepo, err := c.GroupRoleRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get group role repository for group use case: %w", err)
	}

	useCase := registryUsecase.NewGroupUseCase(txManager, groupRepo, roleRepo, appRepo, groupRoleRepo)

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for group use case: %w", err)
	}
	if businessMetrics != nil {
		useCase = registryUsecase.NewGroupUseCaseWithMetrics(useCase, businessMetrics)
	}

	return useCase, nil
}

// initRoleUseCase creates the role use case with all its dependencies.
func (c *Container) initRoleUseCase() (registryUsecase.RoleUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for role use case: %w", err)
	}

	roleRepo, err := c.RoleRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get role repository for role use case: %w", err)
	}

	groupRoleRepo, err := c.GroupRoleRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get group role repository for role use case: %w", err)
	}

	useCase := registryUsecase.NewRoleUseCase(txManager, roleRepo, groupRoleRepo)

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for role use case: %w", err)
	}
	if businessMetrics != nil {
		useCase = registryUsecase.NewRoleUseCaseWithMetrics(useCase, businessMetrics)
	}

	return useCase, nil
}

// initApplicationUseCase creates the application use case with all its dependencies.
func (c *Container) initApplicationUseCase() (registryUsecase.ApplicationUseCase, error) {
	appRepo, err := c.ApplicationRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get application repository for application use case: %w", err)
	}

	groupRepo, err := c.GroupRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get group repository for application use case: %w", err)
	}

	useCase := registryUsecase.NewApplicationUseCase(appRepo, groupRepo)

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for application use case: %w", err)
	}
	if businessMetrics != nil {
		useCase = registryUsecase.NewApplicationUseCaseWithMetrics(useCase, businessMetrics)
	}

	return useCase, nil
}
