package app

import (
	"fmt"

	mailentryRepository "github.com/allisson/mailadmin/internal/mailentry/repository"
	mailentryService "github.com/allisson/mailadmin/internal/mailentry/service"
	mailentryUseCase "github.com/allisson/mailadmin/internal/mailentry/usecase"
)

// CredentialEncoder returns the mail credential encoder service.
func (c *Container) CredentialEncoder() mailentryService.CredentialEncoder {
	c.credentialEncoderInit.Do(func() {
		c.credentialEncoder = mailentryService.NewCredentialEncoder()
	})
	return c.credentialEncoder
}

// EntryRepository returns the mail entry repository based on database driver.
func (c *Container) EntryRepository() (mailentryUseCase.EntryRepository, error) {
	var err error
	c.entryRepoInit.Do(func() {
		c.entryRepo, err = c.initEntryRepository()
		if err != nil {
			c.initErrors["entryRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["entryRepo"]; exists {
		return nil, storedErr
	}
	return c.entryRepo, nil
}

// EntryUseCase returns the mail entry use case, instrumented with business
// metrics when metrics are enabled.
func (c *Container) EntryUseCase() (mailentryUseCase.EntryUseCase, error) {
	var err error
	c.entryUseCaseInit.Do(func() {
		c.entryUseCase, err = c.initEntryUseCase()
		if err != nil {
			c.initErrors["entryUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["entryUseCase"]; exists {
		return nil, storedErr
	}
	return c.entryUseCase, nil
}

func (c *Container) initEntryRepository() (mailentryUseCase.EntryRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for entry repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return mailentryRepository.NewMySQLEntryRepository(db), nil
	case "postgres":
		return mailentryRepository.NewPostgreSQLEntryRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initEntryUseCase() (mailentryUseCase.EntryUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for entry use case: %w", err)
	}

	entryRepo, err := c.EntryRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get entry repository for entry use case: %w", err)
	}

	domainUC, err := c.DomainUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get domain use case for entry use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for entry use case: %w", err)
	}

	useCase := mailentryUseCase.NewEntryUseCase(txManager, entryRepo, domainUC, c.CredentialEncoder())

	return mailentryUseCase.NewEntryUseCaseWithMetrics(useCase, businessMetrics), nil
}
