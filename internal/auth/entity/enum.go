package entity

// Role is the access role granted to an authenticated account.
type Role int16

const (
	RoleUnknown Role = 0

	// RoleAdmin grants access to the admin panel and exports.
	RoleAdmin Role = 1

	// RoleUser is the default role for non-admin accounts.
	RoleUser Role = 2
)

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleUser:
		return "user"
	default:
		return "unknown"
	}
}

func RoleFromString(str string) Role {
	switch str {
	case "admin":
		return RoleAdmin
	case "user":
		return RoleUser
	default:
		return RoleUnknown
	}
}

// Channel identifies how login codes are delivered to the user.
//
// Exactly one channel is resolved at startup. ChannelNone is the development
// fallback: the code is returned in the HTTP response instead of being sent.
type Channel int16

const (
	// ChannelNone means no delivery is configured.
	ChannelNone Channel = 0

	// ChannelSMTP delivers codes through an SMTP relay.
	ChannelSMTP Channel = 1

	// ChannelSendGrid delivers codes through the SendGrid API.
	ChannelSendGrid Channel = 2
)

func (c Channel) String() string {
	switch c {
	case ChannelSMTP:
		return "smtp"
	case ChannelSendGrid:
		return "sendgrid"
	default:
		return "none"
	}
}

func ChannelFromString(str string) Channel {
	switch str {
	case "smtp":
		return ChannelSMTP
	case "sendgrid":
		return ChannelSendGrid
	default:
		return ChannelNone
	}
}
