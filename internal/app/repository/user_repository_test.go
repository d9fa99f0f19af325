package repository

import (
	"testing"

	"github.com/ratemystore/ratemystore-backend/internal/app/model"
	"github.com/ratemystore/ratemystore-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupUserTest(t *testing.T) (*gorm.DB, UserRepository) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	repo := NewUserRepository(testDB)
	return testDB, repo
}

func TestUserRepository_Create(t *testing.T) {
	testDB, repo := setupUserTest(t)
	defer db.CleanupTestDB(testDB)

	tests := []struct {
		name    string
		user    *model.User
		wantErr bool
	}{
		{
			name: "Valid user",
			user: &model.User{
				Name:         "Jonathan Doe Smith the Third",
				Email:        "test@example.com",
				PasswordHash: "hashedpassword",
				Address:      "123 Main Street",
				Role:         model.RoleUser,
			},
			wantErr: false,
		},
		{
			name: "Duplicate email",
			user: &model.User{
				Name:         "Another Person Entirely Here",
				Email:        "test@example.com",
				PasswordHash: "hashedpassword",
				Address:      "456 Oak Avenue",
				Role:         model.RoleUser,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.Create(tt.user)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotZero(t, tt.user.ID)
			}
		})
	}
}

func TestUserRepository_FindByID(t *testing.T) {
	testDB, repo := setupUserTest(t)
	defer db.CleanupTestDB(testDB)

	user := &model.User{
		Name:         "Jonathan Doe Smith the Third",
		Email:        "test@example.com",
		PasswordHash: "hashedpassword",
		Address:      "123 Main Street",
		Role:         model.RoleUser,
	}
	err := repo.Create(user)
	require.NoError(t, err)

	tests := []struct {
		name    string
		id      uint
		wantErr bool
	}{
		{
			name:    "Existing user",
			id:      user.ID,
			wantErr: false,
		},
		{
			name:    "Non-existing user",
			id:      9999,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, err := repo.FindByID(tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, found)
			} else {
				require.NoError(t, err)
				require.NotNil(t, found)
				assert.Equal(t, user.Email, found.Email)
				assert.Equal(t, user.Name, found.Name)
			}
		})
	}
}

func TestUserRepository_FindByEmail(t *testing.T) {
	testDB, repo := setupUserTest(t)
	defer db.CleanupTestDB(testDB)

	user := &model.User{
		Name:         "Jonathan Doe Smith the Third",
		Email:        "findme@example.com",
		PasswordHash: "hashedpassword",
		Role:         model.RoleUser,
	}
	require.NoError(t, repo.Create(user))

	found, err := repo.FindByEmail("findme@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	missing, err := repo.FindByEmail("nobody@example.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Nil(t, missing)
}

func TestUserRepository_FindAll_Filters(t *testing.T) {
	testDB, repo := setupUserTest(t)
	defer db.CleanupTestDB(testDB)

	users := []*model.User{
		{
			Name:         "Alice Wonderland Example Person",
			Email:        "alice@wonderland.com",
			PasswordHash: "hash",
			Role:         model.RoleUser,
		},
		{
			Name:         "Bob Builder Example Person Here",
			Email:        "bob@construction.com",
			PasswordHash: "hash",
			Role:         model.RoleOwner,
		},
		{
			Name:         "Carol Administrator Example One",
			Email:        "carol@platform.com",
			PasswordHash: "hash",
			Role:         model.RoleAdmin,
		},
	}
	for _, u := range users {
		require.NoError(t, repo.Create(u))
	}

	tests := []struct {
		name       string
		filter     UserFilter
		wantEmails []string
	}{
		{
			name:       "No filter returns all, name ascending",
			filter:     UserFilter{},
			wantEmails: []string{"alice@wonderland.com", "bob@construction.com", "carol@platform.com"},
		},
		{
			name:       "Name substring is case-insensitive",
			filter:     UserFilter{Name: "ALICE"},
			wantEmails: []string{"alice@wonderland.com"},
		},
		{
			name:       "Email substring filter",
			filter:     UserFilter{Email: "construction"},
			wantEmails: []string{"bob@construction.com"},
		},
		{
			name:       "Role exact filter",
			filter:     UserFilter{Role: "admin"},
			wantEmails: []string{"carol@platform.com"},
		},
		{
			name:       "Conjunctive filters",
			filter:     UserFilter{Name: "Example", Role: "owner"},
			wantEmails: []string{"bob@construction.com"},
		},
		{
			name:       "Filters with no match",
			filter:     UserFilter{Name: "Alice", Role: "owner"},
			wantEmails: []string{},
		},
		{
			name:       "Name descending sort",
			filter:     UserFilter{SortDesc: true},
			wantEmails: []string{"carol@platform.com", "bob@construction.com", "alice@wonderland.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, err := repo.FindAll(tt.filter)
			require.NoError(t, err)

			emails := make([]string, 0, len(found))
			for _, u := range found {
				emails = append(emails, u.Email)
			}
			assert.Equal(t, tt.wantEmails, emails)
		})
	}
}

func TestUserRepository_Update(t *testing.T) {
	testDB, repo := setupUserTest(t)
	defer db.CleanupTestDB(testDB)

	user := &model.User{
		Name:         "Jonathan Doe Smith the Third",
		Email:        "test@example.com",
		PasswordHash: "oldhash",
		Role:         model.RoleUser,
	}
	require.NoError(t, repo.Create(user))

	user.PasswordHash = "newhash"
	require.NoError(t, repo.Update(user))

	found, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "newhash", found.PasswordHash)
}

func TestUserRepository_Count(t *testing.T) {
	testDB, repo := setupUserTest(t)
	defer db.CleanupTestDB(testDB)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	require.NoError(t, repo.Create(&model.User{
		Name:         "Jonathan Doe Smith the Third",
		Email:        "one@example.com",
		PasswordHash: "hash",
		Role:         model.RoleUser,
	}))

	count, err = repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
