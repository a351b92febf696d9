// +build integration

package mongo

import (
	"context"
	"testing"

	"github.com/speakerdesk/sd_backend/entities"
	"github.com/speakerdesk/sd_backend/repositories"
	"github.com/speakerdesk/sd_backend/services"
	"github.com/speakerdesk/sd_backend/testutils"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

var testUser = entities.User{
	AuthID:    "auth0|bob",
	Name:      "Bob the Tester",
	Email:     "bob@testers.dev",
	AvatarURL: "https://avatars.testers.dev/bob",
}

type userTestSetup struct {
	uService *mongoUserService
	uRepo    *repositories.UserRepository
	cleanup  func()
}

func setupUserTest(t *testing.T) *userTestSetup {
	db := testutils.ConnectToIntegrationTestDB(t)

	uRepo, err := repositories.NewUserRepository(db)
	if err != nil {
		panic(err)
	}

	uService := &mongoUserService{
		logger:         zap.NewNop(),
		userRepository: uRepo,
	}

	return &userTestSetup{
		uService: uService,
		uRepo:    uRepo,
		cleanup: func() {
			uRepo.Drop(context.Background())
		},
	}
}

func Test_NewMongoUserService__should_return_non_nil_object(t *testing.T) {
	assert.NotNil(t, NewMongoUserService(nil, nil, nil))
}

func Test_SyncUser__should_return_ErrInvalidID_for_empty_auth_id(t *testing.T) {
	setup := setupUserTest(t)
	defer setup.cleanup()

	_, err := setup.uService.SyncUser(context.Background(), "", testUser.Name, testUser.Email, testUser.AvatarURL)
	assert.Equal(t, services.ErrInvalidID, err)
}

func Test_SyncUser__should_create_profile_on_first_sync(t *testing.T) {
	setup := setupUserTest(t)
	defer setup.cleanup()

	user, err := setup.uService.SyncUser(context.Background(), testUser.AuthID, testUser.Name, testUser.Email, testUser.AvatarURL)
	assert.NoError(t, err)

	assert.Equal(t, testUser.AuthID, user.AuthID)
	assert.Equal(t, testUser.Name, user.Name)
	assert.Equal(t, testUser.Email, user.Email)

	stored, err := setup.uService.GetUserWithAuthID(context.Background(), testUser.AuthID)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, stored.ID)
}

func Test_SyncUser__should_refresh_changed_display_data(t *testing.T) {
	setup := setupUserTest(t)
	defer setup.cleanup()

	first, err := setup.uService.SyncUser(context.Background(), testUser.AuthID, testUser.Name, testUser.Email, testUser.AvatarURL)
	assert.NoError(t, err)

	second, err := setup.uService.SyncUser(context.Background(), testUser.AuthID, "Bob the Retester", testUser.Email, testUser.AvatarURL)
	assert.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Bob the Retester", second.Name)

	users, err := setup.uService.GetUsers(context.Background())
	assert.NoError(t, err)
	assert.Len(t, users, 1)
}

func Test_GetUserWithEmail__should_return_ErrNotFound_for_unknown_email(t *testing.T) {
	setup := setupUserTest(t)
	defer setup.cleanup()

	_, err := setup.uService.GetUserWithEmail(context.Background(), "nobody@testers.dev")
	assert.Equal(t, services.ErrNotFound, err)
}

func Test_GetUserWithEmail__should_return_the_matching_user(t *testing.T) {
	setup := setupUserTest(t)
	defer setup.cleanup()

	_, err := setup.uService.SyncUser(context.Background(), testUser.AuthID, testUser.Name, testUser.Email, testUser.AvatarURL)
	assert.NoError(t, err)

	user, err := setup.uService.GetUserWithEmail(context.Background(), testUser.Email)
	assert.NoError(t, err)
	assert.Equal(t, testUser.AuthID, user.AuthID)
}

func Test_UpdateUserWithAuthID__should_return_ErrNotFound_for_unknown_user(t *testing.T) {
	setup := setupUserTest(t)
	defer setup.cleanup()

	err := setup.uService.UpdateUserWithAuthID(context.Background(), "auth0|nobody", services.UserUpdateParams{
		entities.UserName: "Nobody",
	})
	assert.Equal(t, services.ErrNotFound, err)
}

func Test_DeleteUserWithAuthID__should_delete_the_user(t *testing.T) {
	setup := setupUserTest(t)
	defer setup.cleanup()

	_, err := setup.uService.SyncUser(context.Background(), testUser.AuthID, testUser.Name, testUser.Email, testUser.AvatarURL)
	assert.NoError(t, err)

	err = setup.uService.DeleteUserWithAuthID(context.Background(), testUser.AuthID)
	assert.NoError(t, err)

	_, err = setup.uService.GetUserWithAuthID(context.Background(), testUser.AuthID)
	assert.Equal(t, services.ErrNotFound, err)
}
