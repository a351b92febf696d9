package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testTeamWithMembers(members ...TeamMember) *Team {
	team := &Team{
		Name: "Test Conf Crew",
		URL:  "test-conf-crew",
	}
	for _, member := range members {
		team.UpsertMember(member)
	}
	return team
}

func assertMembersInSync(t *testing.T, team *Team) {
	idSet := map[string]bool{}
	for _, id := range team.MemberIDs {
		idSet[id] = true
	}
	assert.Equal(t, len(team.MemberIDs), len(idSet), "member_ids contains duplicates")
	assert.Equal(t, len(team.Members), len(idSet))
	for _, member := range team.Members {
		assert.True(t, idSet[member.UserID], "member %s missing from member_ids", member.UserID)
	}
}

func Test_UpsertMember__should_add_new_member_to_both_structures(t *testing.T) {
	team := testTeamWithMembers()

	team.UpsertMember(TeamMember{UserID: "alice", Role: RoleOwner, Status: MemberStatusActive})

	assert.True(t, team.HasMember("alice"))
	assert.Len(t, team.MemberIDs, 1)
	assert.Len(t, team.Members, 1)
	assertMembersInSync(t, team)
}

func Test_UpsertMember__should_update_existing_member_in_place(t *testing.T) {
	team := testTeamWithMembers(
		TeamMember{UserID: "alice", Role: RoleOwner, Status: MemberStatusActive},
		TeamMember{UserID: "bob", Role: RoleMember, Status: MemberStatusActive},
	)

	team.UpsertMember(TeamMember{UserID: "bob", Role: RoleOwner, Status: MemberStatusActive})

	assert.Len(t, team.MemberIDs, 2)
	assert.Len(t, team.Members, 2)
	assert.Equal(t, RoleOwner, team.MemberWithID("bob").Role)
	assertMembersInSync(t, team)
}

func Test_RemoveMember__should_delete_member_from_both_structures(t *testing.T) {
	team := testTeamWithMembers(
		TeamMember{UserID: "alice", Role: RoleOwner, Status: MemberStatusActive},
		TeamMember{UserID: "bob", Role: RoleMember, Status: MemberStatusActive},
	)

	removed := team.RemoveMember("bob")

	assert.True(t, removed)
	assert.False(t, team.HasMember("bob"))
	assert.Nil(t, team.MemberWithID("bob"))
	assertMembersInSync(t, team)
}

func Test_RemoveMember__should_return_false_when_member_does_not_exist(t *testing.T) {
	team := testTeamWithMembers(
		TeamMember{UserID: "alice", Role: RoleOwner, Status: MemberStatusActive},
	)

	removed := team.RemoveMember("bob")

	assert.False(t, removed)
	assert.Len(t, team.MemberIDs, 1)
	assertMembersInSync(t, team)
}

func Test_OwnerCount__should_count_only_members_with_owner_role(t *testing.T) {
	tests := []struct {
		name    string
		members []TeamMember
		want    int
	}{
		{
			name: "no members",
			want: 0,
		},
		{
			name: "single owner",
			members: []TeamMember{
				{UserID: "alice", Role: RoleOwner},
			},
			want: 1,
		},
		{
			name: "owner and member",
			members: []TeamMember{
				{UserID: "alice", Role: RoleOwner},
				{UserID: "bob", Role: RoleMember},
			},
			want: 1,
		},
		{
			name: "two owners",
			members: []TeamMember{
				{UserID: "alice", Role: RoleOwner},
				{UserID: "bob", Role: RoleOwner},
			},
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			team := testTeamWithMembers(tt.members...)
			assert.Equal(t, tt.want, team.OwnerCount())
		})
	}
}

func Test_MemberWithID__should_return_pointer_into_members_slice(t *testing.T) {
	team := testTeamWithMembers(
		TeamMember{UserID: "alice", Role: RoleMember, Status: MemberStatusActive},
	)

	member := team.MemberWithID("alice")
	assert.NotNil(t, member)

	member.Role = RoleOwner
	assert.Equal(t, RoleOwner, team.Members[0].Role)
}
