package mock

import (
	"context"

	"github.com/maneomkar369/saheli-connect-2.0/internal/models"
	"github.com/maneomkar369/saheli-connect-2.0/pkg/repository"
)

// Test helpers and mocks
type Mocks struct {
	UserRepo    *MockUserRepo
	ProfileRepo *MockProfileRepo
}

func NewMocks() *Mocks {
	return &Mocks{
		UserRepo:    &MockUserRepo{},
		ProfileRepo: &MockProfileRepo{},
	}
}

type MockUserRepo struct {
	Stored    *models.User
	CreateErr error
}

func (m *MockUserRepo) CreateUser(ctx context.Context, u *models.User) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	if m.Stored != nil && m.Stored.Email == u.Email {
		return 0, repository.ErrDuplicate
	}
	stored := *u
	stored.ID = 1
	stored.Status = models.UserActive
	m.Stored = &stored
	return 1, nil
}

func (m *MockUserRepo) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	if m.Stored != nil && m.Stored.ID == id {
		return m.Stored, nil
	}
	return nil, nil
}

func (m *MockUserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.Stored != nil && m.Stored.Email == email {
		return m.Stored, nil
	}
	return nil, nil
}

func (m *MockUserRepo) UpdateUserProfile(ctx context.Context, id int64, fullName, phone, city, about, profileImage string) error {
	if m.Stored != nil && m.Stored.ID == id {
		m.Stored.FullName = fullName
		m.Stored.Phone = phone
		m.Stored.City = city
		m.Stored.About = about
		m.Stored.ProfileImage = &profileImage
	}
	return nil
}

func (m *MockUserRepo) SearchUsers(ctx context.Context, excludeID int64, f models.SearchFilter) ([]models.SearchResult, error) {
	return nil, nil
}

func (m *MockUserRepo) UserStats(ctx context.Context, userID int64) (*models.UserStats, error) {
	return &models.UserStats{}, nil
}

type MockProfileRepo struct {
	HelperProfiles      map[int64]*models.HelperProfile
	EmployerPreferences map[int64]*models.EmployerPreferences
}

func (m *MockProfileRepo) CreateHelperProfile(ctx context.Context, userID int64) error {
	if m.HelperProfiles == nil {
		m.HelperProfiles = make(map[int64]*models.HelperProfile)
	}
	m.HelperProfiles[userID] = &models.HelperProfile{UserID: userID}
	return nil
}

func (m *MockProfileRepo) CreateEmployerPreferences(ctx context.Context, userID int64) error {
	if m.EmployerPreferences == nil {
		m.EmployerPreferences = make(map[int64]*models.EmployerPreferences)
	}
	m.EmployerPreferences[userID] = &models.EmployerPreferences{UserID: userID}
	return nil
}

func (m *MockProfileRepo) GetHelperProfile(ctx context.Context, userID int64) (*models.HelperProfile, error) {
	return m.HelperProfiles[userID], nil
}

func (m *MockProfileRepo) GetEmployerPreferences(ctx context.Context, userID int64) (*models.EmployerPreferences, error) {
	return m.EmployerPreferences[userID], nil
}

func (m *MockProfileRepo) UpsertHelperProfile(ctx context.Context, p *models.HelperProfile) error {
	if m.HelperProfiles == nil {
		m.HelperProfiles = make(map[int64]*models.HelperProfile)
	}
	m.HelperProfiles[p.UserID] = p
	return nil
}
