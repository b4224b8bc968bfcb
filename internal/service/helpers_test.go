package service_test

import (
	"context"

	"staffing-backoffice/internal/database/models"
	"staffing-backoffice/internal/mocks"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

// passThroughTransactor runs transaction callbacks directly
func passThroughTransactor(ctrl *gomock.Controller) *mocks.MockTransactorInterface {
	tx := mocks.NewMockTransactorInterface(ctrl)
	tx.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()
	return tx
}

// quietRecorder accepts any number of activity entries
func quietRecorder(ctrl *gomock.Controller) *mocks.MockActivityRecorder {
	rec := mocks.NewMockActivityRecorder(ctrl)
	rec.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	return rec
}

func employee(name string, role models.EmployeeRole, active bool) *models.Employee {
	e := &models.Employee{FullName: name, Role: role, IsActive: active}
	e.ID = uuid.New()
	return e
}

func ptr[T any](v T) *T {
	return &v
}
