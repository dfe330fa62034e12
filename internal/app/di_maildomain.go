package app

import (
	"fmt"

	maildomainRepository "github.com/allisson/mailadmin/internal/maildomain/repository"
	maildomainUseCase "github.com/allisson/mailadmin/internal/maildomain/usecase"
)

// DomainRepository returns the mail domain repository based on database driver.
func (c *Container) DomainRepository() (maildomainUseCase.DomainRepository, error) {
	var err error
	c.domainRepoInit.Do(func() {
		c.domainRepo, err = c.initDomainRepository()
		if err != nil {
			c.initErrors["domainRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["domainRepo"]; exists {
		return nil, storedErr
	}
	return c.domainRepo, nil
}

// AllowDenyRepository returns the sender allow/deny repository based on
// database driver.
func (c *Container) AllowDenyRepository() (maildomainUseCase.AllowDenyRepository, error) {
	var err error
	c.allowDenyRepoInit.Do(func() {
		c.allowDenyRepo, err = c.initAllowDenyRepository()
		if err != nil {
			c.initErrors["allowDenyRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["allowDenyRepo"]; exists {
		return nil, storedErr
	}
	return c.allowDenyRepo, nil
}

// DomainUseCase returns the mail domain use case.
func (c *Container) DomainUseCase() (maildomainUseCase.DomainUseCase, error) {
	var err error
	c.domainUseCaseInit.Do(func() {
		c.domainUseCase, err = c.initDomainUseCase()
		if err != nil {
			c.initErrors["domainUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["domainUseCase"]; exists {
		return nil, storedErr
	}
	return c.domainUseCase, nil
}

func (c *Container) initDomainRepository() (maildomainUseCase.DomainRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for domain repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return maildomainRepository.NewMySQLDomainRepository(db), nil
	case "postgres":
		return maildomainRepository.NewPostgreSQLDomainRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initAllowDenyRepository() (maildomainUseCase.AllowDenyRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for allow/deny repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return maildomainRepository.NewMySQLAllowDenyRepository(db), nil
	case "postgres":
		return maildomainRepository.NewPostgreSQLAllowDenyRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initDomainUseCase() (maildomainUseCase.DomainUseCase, error) {
	domainRepo, err := c.DomainRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get domain repository for domain use case: %w", err)
	}

	allowDenyRepo, err := c.AllowDenyRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get allow/deny repository for domain use case: %w", err)
	}

	userRepo, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for domain use case: %w", err)
	}

	return maildomainUseCase.NewDomainUseCase(domainRepo, allowDenyRepo, userRepo), nil
}
