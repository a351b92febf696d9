// +build integration

package mongo

import (
	"context"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/speakerdesk/sd_backend/entities"
	mock_services "github.com/speakerdesk/sd_backend/mocks/services"
	"github.com/speakerdesk/sd_backend/repositories"
	"github.com/speakerdesk/sd_backend/services"
	"github.com/speakerdesk/sd_backend/testutils"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

const (
	testOwnerID  = "auth0|owner"
	testMemberID = "auth0|member"
	testOtherID  = "auth0|other"
)

type teamTestSetup struct {
	tService     *mongoTeamService
	tRepo        *repositories.TeamRepository
	mockUService *mock_services.MockUserService
	mockEService *mock_services.MockEmailService
	cleanup      func()
}

func setupTeamTest(t *testing.T) *teamTestSetup {
	db := testutils.ConnectToIntegrationTestDB(t)

	ctrl := gomock.NewController(t)
	mockUService := mock_services.NewMockUserService(ctrl)
	mockEService := mock_services.NewMockEmailService(ctrl)

	tRepo, err := repositories.NewTeamRepository(db)
	if err != nil {
		panic(err)
	}

	tService := &mongoTeamService{
		logger:         zap.NewNop(),
		teamRepository: tRepo,
		userService:    mockUService,
		emailService:   mockEService,
	}

	return &teamTestSetup{
		tService:     tService,
		tRepo:        tRepo,
		mockUService: mockUService,
		mockEService: mockEService,
		cleanup: func() {
			tRepo.Drop(context.Background())
		},
	}
}

// allowEnrichment makes member view enrichment a no-op for users the
// directory does not know about
func (s *teamTestSetup) allowEnrichment() {
	s.mockUService.EXPECT().GetUserWithAuthID(gomock.Any(), gomock.Any()).
		Return(nil, services.ErrNotFound).AnyTimes()
}

// createTestTeam creates a team with an active Owner and, optionally,
// an active Member
func (s *teamTestSetup) createTestTeam(t *testing.T, withMember bool) *entities.Team {
	s.mockUService.EXPECT().GetUserWithAuthID(gomock.Any(), testOwnerID).
		Return(&entities.User{AuthID: testOwnerID, Email: "owner@testers.dev"}, nil).Times(1)

	team, err := s.tService.CreateTeam(context.Background(), "Bobs the Testers", testOwnerID)
	assert.NoError(t, err)

	if withMember {
		team.UpsertMember(entities.TeamMember{
			UserID: testMemberID,
			Role:   entities.RoleMember,
			Email:  "member@testers.dev",
			Status: entities.MemberStatusActive,
		})
		assert.NoError(t, s.tService.saveTeam(context.Background(), team))
	}

	return team
}

func Test_NewMongoTeamService__should_return_non_nil_object(t *testing.T) {
	assert.NotNil(t, NewMongoTeamService(nil, nil, nil, nil, nil))
}

func Test_CreateTeam__should_make_the_creator_an_active_owner(t *testing.T) {
	setup := setupTeamTest(t)
	defer setup.cleanup()

	team := setup.createTestTeam(t, false)

	assert.Equal(t, testOwnerID, team.UserCreateID)
	assert.Equal(t, []string{testOwnerID}, team.MemberIDs)

	creator := team.MemberWithID(testOwnerID)
	assert.NotNil(t, creator)
	assert.Equal(t, entities.RoleOwner, creator.Role)
	assert.Equal(t, entities.MemberStatusActive, creator.Status)
	assert.True(t, creator.IsCreator)

	stored, err := setup.tService.GetTeamWithID(context.Background(), team.ID.Hex())
	assert.NoError(t, err)
	assert.Equal(t, team.MemberIDs, stored.MemberIDs)
}

func Test_CreateTeam__should_return_ErrURLTaken_when_name_slug_is_taken(t *testing.T) {
	setup := setupTeamTest(t)
	defer setup.cleanup()

	setup.createTestTeam(t, false)

	setup.mockUService.EXPECT().GetUserWithAuthID(gomock.Any(), testOtherID).
		Return(nil, services.ErrNotFound).Times(1)

	team, err := setup.tService.CreateTeam(context.Background(), "Bobs the Testers", testOtherID)

	assert.Equal(t, services.ErrURLTaken, err)
	assert.Nil(t, team)
}

func Test_GetTeamWithID__should_return_ErrNotFound_for_unknown_team(t *testing.T) {
	setup := setupTeamTest(t)
	defer setup.cleanup()

	_, err := setup.tService.GetTeamWithID(context.Background(), "5f5a6b2dcbbd7a3d51d4d0ad")
	assert.Equal(t, services.ErrNotFound, err)
}

func Test_GetTeamMembers__should_distinguish_missing_team_from_denied_access(t *testing.T) {
	setup := setupTeamTest(t)
	defer setup.cleanup()

	team := setup.createTestTeam(t, false)

	_, err := setup.tService.GetTeamMembers(context.Background(), "5f5a6b2dcbbd7a3d51d4d0ad", testOtherID)
	assert.Equal(t, services.ErrNotFound, err)

	_, err = setup.tService.GetTeamMembers(context.Background(), team.ID.Hex(), testOtherID)
	assert.Equal(t, services.ErrAccessDenied, err)
}

func Test_AddTeamMember__should_return_ErrNotAnOwner_when_actor_is_a_member(t *testing.T) {
	setup := setupTeamTest(t)
	defer setup.cleanup()

	team := setup.createTestTeam(t, true)

	_, err := setup.tService.AddTeamMember(context.Background(), team.ID.Hex(), testMemberID, testOtherID, "")
	assert.Equal(t, services.ErrNotAnOwner, err)
}

func Test_AddTeamMember__should_return_ErrUserNotRegistered_for_unknown_target(t *testing.T) {
	setup := setupTeamTest(t)
	defer setup.cleanup()

	team := setup.createTestTeam(t, false)

	setup.mockUService.EXPECT().GetUserWithAuthID(gomock.Any(), testOtherID).
		Return(nil, services.ErrNotFound).Times(1)

	_, err := setup.tService.AddTeamMember(context.Background(), team.ID.Hex(), testOwnerID, testOtherID, "")
	assert.Equal(t, services.ErrUserNotRegistered, err)
}

func Test_AddTeamMember__should_return_ErrAlreadyMember_for_existing_member(t *testing.T) {
	setup := setupTeamTest(t)
	defer setup.cleanup()

	team := setup.createTestTeam(t, true)

	setup.mockUService.EXPECT().GetUserWithAuthID(gomock.Any(), testMemberID).
		Return(&entities.User{AuthID: testMemberID}, nil).Times(1)

	_, err := setup.tService.AddTeamMember(context.Background(), team.ID.Hex(), testOwnerID, testMemberID, "")
	assert.Equal(t, services.ErrAlreadyMember, err)
}

func Test_AddTeamMember__should_add_member_and_keep_member_ids_in_sync(t *testing.T) {
	setup := setupTeamTest(t)
	defer setup.cleanup()

	team := setup.createTestTeam(t, false)

	targetUser := entities.User{AuthID: testOtherID, Name: "Rob the Tester", Email: "rob@testers.dev"}
	setup.mockUService.EXPECT().GetUserWithAuthID(gomock.Any(), testOtherID).
		Return(&targetUser, nil).AnyTimes()

	member, err := setup.tService.AddTeamMember(context.Background(), team.ID.Hex(), testOwnerID, testOtherID, "")
	assert.NoError(t, err)

	assert.Equal(t, entities.RoleMember, member.Role)
	assert.Equal(t, entities.MemberStatusActive, member.Status)
	assert.Equal(t, "Rob the Tester", member.Name)

	stored, err := setup.tService.GetTeamWithID(context.Background(), team.ID.Hex())
	assert.NoError(t, err)
	assert.Equal(t, len(stored.Members), len(stored.MemberIDs))
	assert.True(t, stored.HasMember(testOtherID))
}

func Test_InviteMemberByEmail__should_record_a_placeholder_for_unregistered_invitee(t *testing.T) {
	setup := setupTeamTest(t)
	defer setup.cleanup()

	team := setup.createTestTeam(t, false)

	setup.mockUService.EXPECT().GetUserWithEmail(gomock.Any(), "new@testers.dev").
		Return(nil, services.ErrNotFound).Times(1)
	setup.mockUService.EXPECT().GetUserWithAuthID(gomock.Any(), testOwnerID).
		Return(&entities.User{AuthID: testOwnerID, Name: "Bob the Tester"}, nil).Times(1)
	setup.mockEService.EXPECT().SendTeamInviteEmail(gomock.Any(), "Bob the Tester", "new@testers.dev").
		Return(nil).Times(1)

	member, err := setup.tService.InviteMemberByEmail(context.Background(), team.ID.Hex(), testOwnerID, "new@testers.dev")
	assert.NoError(t, err)

	assert.True(t, strings.HasPrefix(member.UserID, invitedIDPrefix))
	assert.Equal(t, entities.MemberStatusInvited, member.Status)
	assert.Equal(t, entities.RoleMember, member.Role)

	stored, err := setup.tService.GetTeamWithID(context.Background(), team.ID.Hex())
	assert.NoError(t, err)
	assert.True(t, stored.HasMember(member.UserID))

	invite := stored.PendingInviteForEmail("new@testers.dev")
	assert.NotNil(t, invite)
	assert.Equal(t, member.UserID, invite.PlaceholderID)
}

func Test_InviteMemberByEmail__should_keep_one_placeholder_for_repeat_invites(t *testing.T) {
	setup := setupTeamTest(t)
	defer setup.cleanup()

	team := setup.createTestTeam(t, false)

	setup.mockUService.EXPECT().GetUserWithEmail(gomock.Any(), "new@testers.dev").
		Return(nil, services.ErrNotFound).Times(2)
	setup.mockUService.EXPECT().GetUserWithAuthID(gomock.Any(), testOwnerID).
		Return(&entities.User{AuthID: testOwnerID, Name: "Bob the Tester"}, nil).Times(2)
	setup.mockUService.EXPECT().GetUserWithAuthID(gomock.Any(), gomock.Not(testOwnerID)).
		Return(nil, services.ErrNotFound).AnyTimes()
	setup.mockEService.EXPECT().SendTeamInviteEmail(gomock.Any(), "Bob the Tester", "new@testers.dev").
		Return(nil).Times(2)

	first, err := setup.tService.InviteMemberByEmail(context.Background(), team.ID.Hex(), testOwnerID, "new@testers.dev")
	assert.NoError(t, err)

	second, err := setup.tService.InviteMemberByEmail(context.Background(), team.ID.Hex(), testOwnerID, "new@testers.dev")
	assert.NoError(t, err)
	assert.Equal(t, first.UserID, second.UserID)
	assert.Equal(t, entities.MemberStatusInvited, second.Status)

	stored, err := setup.tService.GetTeamWithID(context.Background(), team.ID.Hex())
	assert.NoError(t, err)
	assert.Equal(t, 2, len(stored.Members))
	assert.Equal(t, len(stored.Members), len(stored.MemberIDs))

	invites := 0
	for _, invite := range stored.PendingInvites {
		if invite.Email == "new@testers.dev" {
			invites++
		}
	}
	assert.Equal(t, 1, invites)
}

func Test_InviteMemberByEmail__should_add_registered_invitee_directly(t *testing.T) {
	setup := setupTeamTest(t)
	defer setup.cleanup()

	team := setup.createTestTeam(t, false)

	targetUser := entities.User{AuthID: testOtherID, Name: "Rob the Tester", Email: "rob@testers.dev"}
	setup.mockUService.EXPECT().GetUserWithEmail(gomock.Any(), "rob@testers.dev").
		Return(&targetUser, nil).Times(1)
	setup.mockUService.EXPECT().GetUserWithAuthID(gomock.Any(), testOtherID).
		Return(&targetUser, nil).AnyTimes()
	setup.mockUService.EXPECT().GetUserWithAuthID(gomock.Any(), testOwnerID).
		Return(&entities.User{AuthID: testOwnerID, Name: "Bob the Tester"}, nil).AnyTimes()
	setup.mockEService.EXPECT().SendTeamInviteEmail(gomock.Any(), "Bob the Tester", "rob@testers.dev").
		Return(nil).Times(1)

	member, err := setup.tService.InviteMemberByEmail(context.Background(), team.ID.Hex(), testOwnerID, "rob@testers.dev")
	assert.NoError(t, err)

	assert.Equal(t, testOtherID, member.UserID)
	assert.Equal(t, entities.MemberStatusActive, member.Status)

	stored, err := setup.tService.GetTeamWithID(context.Background(), team.ID.Hex())
	assert.NoError(t, err)
	assert.Nil(t, stored.PendingInviteForEmail("rob@testers.dev"))
}

func Test_UpdateTeamMemberRole__should_return_ErrSelfRoleChange_for_own_role(t *testing.T) {
	setup := setupTeamTest(t)
	defer setup.cleanup()

	team := setup.createTestTeam(t, false)

	_, err := setup.tService.UpdateTeamMemberRole(context.Background(), team.ID.Hex(), testOwnerID, testOwnerID, entities.RoleMember)
	assert.Equal(t, services.ErrSelfRoleChange, err)
}

func Test_UpdateTeamMemberRole__should_return_ErrSelfRoleChange_even_with_another_owner(t *testing.T) {
	setup := setupTeamTest(t)
	defer setup.cleanup()

	// the self-change rule is independent of how many owners remain
	team := setup.createTestTeam(t, false)
	team.UpsertMember(entities.TeamMember{
		UserID: testOtherID,
		Role:   entities.RoleOwner,
		Status: entities.MemberStatusActive,
	})
	assert.NoError(t, setup.tService.saveTeam(context.Background(), team))

	_, err := setup.tService.UpdateTeamMemberRole(context.Background(), team.ID.Hex(), testOwnerID, testOwnerID, entities.RoleMember)
	assert.Equal(t, services.ErrSelfRoleChange, err)
}

func Test_UpdateTeamMemberRole__should_return_ErrNotFound_for_unknown_member(t *testing.T) {
	setup := setupTeamTest(t)
	defer setup.cleanup()

	team := setup.createTestTeam(t, false)

	_, err := setup.tService.UpdateTeamMemberRole(context.Background(), team.ID.Hex(), testOwnerID, testOtherID, entities.RoleOwner)
	assert.Equal(t, services.ErrNotFound, err)
}

func Test_UpdateTeamMemberRole__should_allow_demotion_while_another_owner_remains(t *testing.T) {
	setup := setupTeamTest(t)
	defer setup.cleanup()

	// two owners so the actor can target another owner
	team := setup.createTestTeam(t, false)
	team.UpsertMember(entities.TeamMember{
		UserID: testOtherID,
		Role:   entities.RoleOwner,
		Status: entities.MemberStatusActive,
	})
	assert.NoError(t, setup.tService.saveTeam(context.Background(), team))
	setup.allowEnrichment()

	member, err := setup.tService.UpdateTeamMemberRole(context.Background(), team.ID.Hex(), testOwnerID, testOtherID, entities.RoleMember)
	assert.NoError(t, err)
	assert.Equal(t, entities.RoleMember, member.Role)

	stored, err := setup.tService.GetTeamWithID(context.Background(), team.ID.Hex())
	assert.NoError(t, err)
	assert.Equal(t, 1, stored.OwnerCount())
}

func Test_UpdateTeamMemberRole__should_never_leave_the_team_without_an_owner(t *testing.T) {
	setup := setupTeamTest(t)
	defer setup.cleanup()

	team := setup.createTestTeam(t, true)
	setup.allowEnrichment()

	// promote the member to owner, demote the original owner, then the
	// member is the last owner and the original owner can no longer act
	member, err := setup.tService.UpdateTeamMemberRole(context.Background(), team.ID.Hex(), testOwnerID, testMemberID, entities.RoleOwner)
	assert.NoError(t, err)
	assert.Equal(t, entities.RoleOwner, member.Role)

	_, err = setup.tService.UpdateTeamMemberRole(context.Background(), team.ID.Hex(), testMemberID, testOwnerID, entities.RoleMember)
	assert.NoError(t, err)

	_, err = setup.tService.UpdateTeamMemberRole(context.Background(), team.ID.Hex(), testOwnerID, testMemberID, entities.RoleMember)
	assert.Equal(t, services.ErrNotAnOwner, err)

	stored, err := setup.tService.GetTeamWithID(context.Background(), team.ID.Hex())
	assert.NoError(t, err)
	assert.Equal(t, 1, stored.OwnerCount())
}

func Test_RemoveTeamMember__should_return_ErrOwnerRemoval_for_owner_target(t *testing.T) {
	setup := setupTeamTest(t)
	defer setup.cleanup()

	// even with two owners, owners are removed only after demotion
	team := setup.createTestTeam(t, false)
	team.UpsertMember(entities.TeamMember{
		UserID: testOtherID,
		Role:   entities.RoleOwner,
		Status: entities.MemberStatusActive,
	})
	assert.NoError(t, setup.tService.saveTeam(context.Background(), team))

	removed, err := setup.tService.RemoveTeamMember(context.Background(), team.ID.Hex(), testOwnerID, testOtherID)
	assert.Equal(t, services.ErrOwnerRemoval, err)
	assert.False(t, removed)
}

func Test_RemoveTeamMember__should_reject_sole_owner_removing_themself(t *testing.T) {
	setup := setupTeamTest(t)
	defer setup.cleanup()

	team := setup.createTestTeam(t, false)

	removed, err := setup.tService.RemoveTeamMember(context.Background(), team.ID.Hex(), testOwnerID, testOwnerID)
	assert.Equal(t, services.ErrOwnerRemoval, err)
	assert.False(t, removed)

	stored, err := setup.tService.GetTeamWithID(context.Background(), team.ID.Hex())
	assert.NoError(t, err)
	assert.True(t, stored.HasMember(testOwnerID))
}

func Test_RemoveTeamMember__should_report_false_for_absent_target(t *testing.T) {
	setup := setupTeamTest(t)
	defer setup.cleanup()

	team := setup.createTestTeam(t, false)

	removed, err := setup.tService.RemoveTeamMember(context.Background(), team.ID.Hex(), testOwnerID, testOtherID)
	assert.NoError(t, err)
	assert.False(t, removed)
}

func Test_RemoveTeamMember__should_remove_member_and_keep_member_ids_in_sync(t *testing.T) {
	setup := setupTeamTest(t)
	defer setup.cleanup()

	team := setup.createTestTeam(t, true)

	removed, err := setup.tService.RemoveTeamMember(context.Background(), team.ID.Hex(), testOwnerID, testMemberID)
	assert.NoError(t, err)
	assert.True(t, removed)

	stored, err := setup.tService.GetTeamWithID(context.Background(), team.ID.Hex())
	assert.NoError(t, err)
	assert.False(t, stored.HasMember(testMemberID))
	assert.Equal(t, len(stored.Members), len(stored.MemberIDs))
}

func Test_ReconcileInvites__should_replace_placeholder_with_registered_identity(t *testing.T) {
	setup := setupTeamTest(t)
	defer setup.cleanup()

	team := setup.createTestTeam(t, false)

	setup.mockUService.EXPECT().GetUserWithEmail(gomock.Any(), "new@testers.dev").
		Return(nil, services.ErrNotFound).Times(1)
	setup.mockUService.EXPECT().GetUserWithAuthID(gomock.Any(), testOwnerID).
		Return(&entities.User{AuthID: testOwnerID, Name: "Bob the Tester"}, nil).Times(1)
	setup.mockEService.EXPECT().SendTeamInviteEmail(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).Times(1)

	invited, err := setup.tService.InviteMemberByEmail(context.Background(), team.ID.Hex(), testOwnerID, "new@testers.dev")
	assert.NoError(t, err)

	err = setup.tService.ReconcileInvites(context.Background(), "new@testers.dev", testOtherID)
	assert.NoError(t, err)

	stored, err := setup.tService.GetTeamWithID(context.Background(), team.ID.Hex())
	assert.NoError(t, err)

	assert.False(t, stored.HasMember(invited.UserID))
	assert.True(t, stored.HasMember(testOtherID))
	assert.Nil(t, stored.PendingInviteForEmail("new@testers.dev"))

	member := stored.MemberWithID(testOtherID)
	assert.Equal(t, entities.MemberStatusActive, member.Status)
	assert.Equal(t, entities.RoleMember, member.Role)
	assert.Equal(t, len(stored.Members), len(stored.MemberIDs))
}

func Test_slugify__should_produce_url_safe_slugs(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "Bobs the Testers", want: "bobs-the-testers"},
		{name: "  Already--slugged  ", want: "already-slugged"},
		{name: "TesterConf 2026!", want: "testerconf-2026"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, slugify(tt.name))
	}
}
