package handlers

import (
	userRepoPkg "aria/database/repository/user"
)

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	Auth    *AuthHandler
	Voice   *VoiceHandler
	Contact *ContactHandler
	Usage   *UsageHandler
	Inbox   *InboxHandler
	Device  *DeviceHandler
}
