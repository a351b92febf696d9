package entities

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TeamField string

const (
	TeamID             TeamField = "_id"
	TeamName           TeamField = "name"
	TeamURL            TeamField = "url"
	TeamUserCreateID   TeamField = "user_create_id"
	TeamMemberIDs      TeamField = "member_ids"
	TeamMembers        TeamField = "members"
	TeamPendingInvites TeamField = "pending_invites"
)

// roles meaningful to the membership rules; role is an open string in the data
const (
	RoleOwner  = "Owner"
	RoleMember = "Member"
)

// membership statuses
const (
	MemberStatusActive  = "active"
	MemberStatusInvited = "invited"
)

// PendingInvite records the email to placeholder-id mapping for an
// invitee without a registered account, until reconciliation
type PendingInvite struct {
	Email         string `json:"email" bson:"email"`
	PlaceholderID string `json:"placeholder_id" bson:"placeholder_id"`
}

// TeamMember is a single membership record within a Team
type TeamMember struct {
	UserID    string `json:"user_id" bson:"user_id"`
	Role      string `json:"role" bson:"role"`
	Email     string `json:"email,omitempty" bson:"email,omitempty"`
	Status    string `json:"status" bson:"status"`
	IsCreator bool   `json:"is_creator,omitempty" bson:"is_creator,omitempty"`
}

// Team is the struct to store teams.
// MemberIDs and the user ids in Members must always be the same set:
// MemberIDs is the fast-contains index, Members carries role and status.
type Team struct {
	ID             primitive.ObjectID `json:"_id" bson:"_id"`
	Name           string             `json:"name" bson:"name" validate:"required"`
	URL            string             `json:"url" bson:"url" validate:"required"`
	UserCreateID   string             `json:"user_create_id" bson:"user_create_id"`
	MemberIDs      []string           `json:"member_ids" bson:"member_ids"`
	Members        []TeamMember       `json:"members" bson:"members"`
	PendingInvites []PendingInvite    `json:"pending_invites,omitempty" bson:"pending_invites,omitempty"`
}

// HasMember reports whether the given user id is in the member index
func (t *Team) HasMember(userID string) bool {
	for _, id := range t.MemberIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// MemberWithID returns the membership record for the given user id
func (t *Team) MemberWithID(userID string) *TeamMember {
	for i := range t.Members {
		if t.Members[i].UserID == userID {
			return &t.Members[i]
		}
	}
	return nil
}

// OwnerCount returns the number of members holding the Owner role
func (t *Team) OwnerCount() int {
	count := 0
	for i := range t.Members {
		if t.Members[i].Role == RoleOwner {
			count++
		}
	}
	return count
}

// UpsertMember inserts or updates the membership record for member.UserID,
// keeping MemberIDs and Members in sync
func (t *Team) UpsertMember(member TeamMember) {
	if !t.HasMember(member.UserID) {
		t.MemberIDs = append(t.MemberIDs, member.UserID)
	}
	for i := range t.Members {
		if t.Members[i].UserID == member.UserID {
			t.Members[i] = member
			return
		}
	}
	t.Members = append(t.Members, member)
}

// PendingInviteForEmail returns the pending invite for the given email
func (t *Team) PendingInviteForEmail(email string) *PendingInvite {
	for i := range t.PendingInvites {
		if t.PendingInvites[i].Email == email {
			return &t.PendingInvites[i]
		}
	}
	return nil
}

// RemovePendingInvite deletes the pending invite for the given email
func (t *Team) RemovePendingInvite(email string) {
	for i := range t.PendingInvites {
		if t.PendingInvites[i].Email == email {
			t.PendingInvites = append(t.PendingInvites[:i], t.PendingInvites[i+1:]...)
			return
		}
	}
}

// RemoveMember deletes the membership record for the given user id from
// both MemberIDs and Members. Returns false when the user is not a member.
func (t *Team) RemoveMember(userID string) bool {
	found := false
	for i, id := range t.MemberIDs {
		if id == userID {
			t.MemberIDs = append(t.MemberIDs[:i], t.MemberIDs[i+1:]...)
			found = true
			break
		}
	}
	for i := range t.Members {
		if t.Members[i].UserID == userID {
			t.Members = append(t.Members[:i], t.Members[i+1:]...)
			found = true
			break
		}
	}
	return found
}
