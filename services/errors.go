package services

import "errors"

var (
	// ErrInvalidID is the error returned by services when
	// the id provided in the call to the service is invalid
	ErrInvalidID = errors.New("id was invalid or not provided")
	// ErrNotFound is the error returned by services when
	// the requested object could not be found
	ErrNotFound = errors.New("requested object could not be found")
	// ErrAccessDenied is the error returned by services when the acting
	// user is not allowed to perform the requested operation
	ErrAccessDenied = errors.New("access denied")
	// ErrURLTaken is the error returned by services when the requested
	// team or event URL is already in use
	ErrURLTaken = errors.New("url is already taken")
	// ErrSendgridRejectedRequest is the error returned by EmailService
	// when Sendgrid rejects an email request
	ErrSendgridRejectedRequest = errors.New("email request was rejected by Sendgrid")
)

// membership business-rule violations
var (
	// ErrUserNotRegistered is returned when the target of an add
	// operation has no account in the user directory
	ErrUserNotRegistered = errors.New("User does not exist")
	// ErrAlreadyMember is returned when the target of an add or invite
	// operation is already a member of the team
	ErrAlreadyMember = errors.New("User is already a member of this team")
	// ErrNotAnOwner is returned when a membership-changing operation is
	// attempted by a member without the Owner role
	ErrNotAnOwner = errors.New("Only Owners can perform this action")
	// ErrSelfRoleChange is returned when an Owner attempts to change
	// their own role
	ErrSelfRoleChange = errors.New("You cannot change your own role")
	// ErrLastOwnerDemotion is returned when a role change would leave
	// the team with no Owner
	ErrLastOwnerDemotion = errors.New("Cannot demote the last Owner. Promote another member to Owner first.")
	// ErrOwnerRemoval is returned when removing a member holding the
	// Owner role; Owners must be demoted before removal
	ErrOwnerRemoval = errors.New("Cannot remove an Owner. Change their role to Member first.")
)

// IsInvalidArgument reports whether err is one of the membership
// business-rule violations that the boundary maps to a bad request
func IsInvalidArgument(err error) bool {
	switch err {
	case ErrUserNotRegistered, ErrAlreadyMember, ErrSelfRoleChange,
		ErrLastOwnerDemotion, ErrOwnerRemoval:
		return true
	}
	return false
}
