package app

import (
	"fmt"

	mailkeyRepository "github.com/allisson/mailadmin/internal/mailkey/repository"
	mailkeyService "github.com/allisson/mailadmin/internal/mailkey/service"
	mailkeyUseCase "github.com/allisson/mailadmin/internal/mailkey/usecase"
)

// KeypairGenerator returns the DKIM keypair generator service.
func (c *Container) KeypairGenerator() mailkeyService.KeypairGenerator {
	c.keypairGeneratorInit.Do(func() {
		c.keypairGenerator = mailkeyService.NewKeypairGenerator()
	})
	return c.keypairGenerator
}

// KeyRepository returns the domain key repository based on database driver.
func (c *Container) KeyRepository() (mailkeyUseCase.KeyRepository, error) {
	var err error
	c.keyRepoInit.Do(func() {
		c.keyRepo, err = c.initKeyRepository()
		if err != nil {
			c.initErrors["keyRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["keyRepo"]; exists {
		return nil, storedErr
	}
	return c.keyRepo, nil
}

// KeyUseCase returns the domain key use case.
func (c *Container) KeyUseCase() (mailkeyUseCase.KeyUseCase, error) {
	var err error
	c.keyUseCaseInit.Do(func() {
		c.keyUseCase, err = c.initKeyUseCase()
		if err != nil {
			c.initErrors["keyUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["keyUseCase"]; exists {
		return nil, storedErr
	}
	return c.keyUseCase, nil
}

func (c *Container) initKeyRepository() (mailkeyUseCase.KeyRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for key repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return mailkeyRepository.NewMySQLKeyRepository(db), nil
	case "postgres":
		return mailkeyRepository.NewPostgreSQLKeyRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initKeyUseCase() (mailkeyUseCase.KeyUseCase, error) {
	keyRepo, err := c.KeyRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get key repository for key use case: %w", err)
	}

	domainUC, err := c.DomainUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get domain use case for key use case: %w", err)
	}

	return mailkeyUseCase.NewKeyUseCase(keyRepo, domainUC, c.KeypairGenerator()), nil
}
