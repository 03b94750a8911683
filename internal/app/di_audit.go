package app

import (
	"fmt"

	auditHTTP "github.com/controleapp/inventory/internal/audit/http"
	auditRepository "github.com/controleapp/inventory/internal/audit/repository"
	auditUseCase "github.com/controleapp/inventory/internal/audit/usecase"
)

// AuditStore returns the audit event store based on the store driver.
func (c *Container) AuditStore() (auditUseCase.EventStore, error) {
	var err error
	c.auditStoreInit.Do(func() {
		c.auditStore, err = c.initAuditStore()
		if err != nil {
			c.initErrors["auditStore"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["auditStore"]; exists {
		return nil, storedErr
	}
	return c.auditStore, nil
}

// Recorder returns the asynchronous audit recorder.
func (c *Container) Recorder() (auditUseCase.Recorder, error) {
	var err error
	c.recorderInit.Do(func() {
		c.recorder, err = c.initRecorder()
		if err != nil {
			c.initErrors["recorder"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["recorder"]; exists {
		return nil, storedErr
	}
	return c.recorder, nil
}

// AuditHandler returns the HTTP handler for audit event listing.
func (c *Container) AuditHandler() (*auditHTTP.AuditHandler, error) {
	var err error
	c.auditHandlerInit.Do(func() {
		c.auditHandler, err = c.initAuditHandler()
		if err != nil {
			c.initErrors["auditHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["auditHandler"]; exists {
		return nil, storedErr
	}
	return c.auditHandler, nil
}

// initAuditStore creates the audit event store based on the store driver.
func (c *Container) initAuditStore() (auditUseCase.EventStore, error) {
	switch c.config.StoreDriver {
	case "memory":
		return auditRepository.NewMemoryAuditRepository(c.config.AuditHistorySize), nil
	case "postgres":
		db, err := c.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get database for audit store: %w", err)
		}
		return auditRepository.NewPostgreSQLAuditRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported store driver: %s", c.config.StoreDriver)
	}
}

// initRecorder creates the asynchronous audit recorder.
func (c *Container) initRecorder() (auditUseCase.Recorder, error) {
	store, err := c.AuditStore()
	if err != nil {
		return nil, fmt.Errorf("failed to get audit store for recorder: %w", err)
	}

	return auditUseCase.NewAsyncRecorder(store, c.config.AuditBufferSize, c.Logger()), nil
}

// initAuditHandler creates the audit HTTP handler.
func (c *Container) initAuditHandler() (*auditHTTP.AuditHandler, error) {
	recorder, err := c.Recorder()
	if err != nil {
		return nil, fmt.Errorf("failed to get audit recorder for audit handler: %w", err)
	}

	return auditHTTP.NewAuditHandler(recorder, c.Logger()), nil
}
