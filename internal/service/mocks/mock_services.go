package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"adminapi/internal/model"
	"adminapi/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*service.LoginResult, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.LoginResult), args.Error(1)
}

func (m *MockAuthService) Self(ctx context.Context, userID int) (model.User, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockAuthService) UpdateSelf(ctx context.Context, userID int, upd model.ProfileUpdate) (model.User, error) {
	args := m.Called(ctx, userID, upd)
	return args.Get(0).(model.User), args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserService) Create(ctx context.Context, u model.User) (model.User, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserService) Update(ctx context.Context, id int, upd model.UserUpdate) (model.User, error) {
	args := m.Called(ctx, id, upd)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserService) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockFileService struct {
	mock.Mock
}

func (m *MockFileService) List(ctx context.Context) ([]model.FileRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FileRecord), args.Error(1)
}

func (m *MockFileService) Get(ctx context.Context, id int) (model.FileRecord, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.FileRecord), args.Error(1)
}

func (m *MockFileService) Upload(ctx context.Context, f model.FileRecord) (model.FileRecord, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(model.FileRecord), args.Error(1)
}

func (m *MockFileService) Update(ctx context.Context, id int, upd model.FileUpdate) (model.FileRecord, error) {
	args := m.Called(ctx, id, upd)
	return args.Get(0).(model.FileRecord), args.Error(1)
}

func (m *MockFileService) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockMapService struct {
	mock.Mock
}

func (m *MockMapService) History(ctx context.Context) ([]model.HistoryMarker, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.HistoryMarker), args.Error(1)
}

func (m *MockMapService) Regions(ctx context.Context) (model.RegionCollection, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.RegionCollection), args.Error(1)
}

func (m *MockMapService) ListPresets(ctx context.Context) ([]model.PresetLocation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PresetLocation), args.Error(1)
}

func (m *MockMapService) CreatePreset(ctx context.Context, p model.PresetLocation) (model.PresetLocation, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(model.PresetLocation), args.Error(1)
}

func (m *MockMapService) UpdatePreset(ctx context.Context, id int, upd model.PresetUpdate) (model.PresetLocation, error) {
	args := m.Called(ctx, id, upd)
	return args.Get(0).(model.PresetLocation), args.Error(1)
}

func (m *MockMapService) DeletePreset(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMapService) ListShapes(ctx context.Context) ([]model.Shape, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Shape), args.Error(1)
}

func (m *MockMapService) SaveShapes(ctx context.Context, shapes []model.Shape) ([]model.Shape, error) {
	args := m.Called(ctx, shapes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Shape), args.Error(1)
}

func (m *MockMapService) UpdateShape(ctx context.Context, id int, geom model.ShapeGeometry) (model.Shape, error) {
	args := m.Called(ctx, id, geom)
	return args.Get(0).(model.Shape), args.Error(1)
}

func (m *MockMapService) DeleteShape(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
