package app

import (
	"fmt"

	accessHTTP "github.com/allisson/gatekeeper/internal/access/http"
	accessRepository "github.com/allisson/gatekeeper/internal/access/repository"
	accessUsecase "github.com/allisson/gatekeeper/internal/access/usecase"
)

// GrantRepository returns the access grant repository based on database driver.
func (c *Container) GrantRepository() (accessUsecase.GrantRepository, error) {
	c.grantRepoInit.Do(func() {
		repo, err := c.initGrantRepository()
		if err != nil {
			c.initErrors["grantRepo"] = err
			return
		}
		c.grantRepo = repo
	})
	if storedErr, exists := c.initErrors["grantRepo"]; exists {
		return nil, storedErr
	}
	return c.grantRepo, nil
}

// AccessUseCase returns the access resolution use case.
func (c *Container) AccessUseCase() (accessUsecase.AccessUseCase, error) {
	c.accessUseCaseInit.Do(func() {
		useCase, err := c.initAccessUseCase()
		if err != nil {
			c.initErrors["accessUseCase"] = err
			return
		}
		c.accessUseCase = useCase
	})
	if storedErr, exists := c.initErrors["accessUseCase"]; exists {
		return nil, storedErr
	}
	return c.accessUseCase, nil
}

// AccessHandler returns the access HTTP handler.
func (c *Container) AccessHandler() (*accessHTTP.AccessHandler, error) {
	c.accessHandlerInit.Do(func() {
		useCase, err := c.AccessUseCase()
		if err != nil {
			c.initErrors["accessHandler"] = fmt.Errorf("failed to get access use case for handler: %w", err)
			return
		}
		c.accessHandler = accessHTTP.NewAccessHandler(useCase, c.Logger())
	})
	if storedErr, exists := c.initErrors["accessHandler"]; exists {
		return nil, storedErr
	}
	return c.accessHandler, nil
}

// initGrantRepository creates the access grant repository instance.
func (c *Container) initGrantRepository() (accessUsecase.GrantRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for grant repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return accessRepository.NewMySQLGrantRepository(db), nil
	case "postgres":
		return accessRepository.NewPostgreSQLGrantRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initAccessUseCase creates the access use case with all its dependencies.
func (c *Container) initAccessUseCase() (accessUsecase.AccessUseCase, error) {
	grantRepo, err := c.GrantRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get grant repository for access use case: %w", err)
	}

	useCase := accessUsecase.NewAccessUseCase(grantRepo)

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for access use case: %w", err)
	}
	if businessMetrics != nil {
		useCase = accessUsecase.NewAccessUseCaseWithMetrics(useCase, businessMetrics)
	}

	return useCase, nil
}
