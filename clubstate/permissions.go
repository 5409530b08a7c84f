package clubstate

// Permissions is an immutable capability bitmask. Each bit grants one action;
// composition happens on the raw mask, queries go through the named helpers.
type Permissions uint64

const (
	PermissionCreateInvite      Permissions = 1 << 0
	PermissionKickMembers       Permissions = 1 << 1
	PermissionBanMembers        Permissions = 1 << 2
	PermissionAdministrator     Permissions = 1 << 3
	PermissionManageChannels    Permissions = 1 << 4
	PermissionManageClub        Permissions = 1 << 5
	PermissionAddReactions      Permissions = 1 << 6
	PermissionViewAuditLog      Permissions = 1 << 7
	PermissionPrioritySpeaker   Permissions = 1 << 8
	PermissionStream            Permissions = 1 << 9
	PermissionViewChannel       Permissions = 1 << 10
	PermissionSendMessages      Permissions = 1 << 11
	PermissionSendTTSMessages   Permissions = 1 << 12
	PermissionManageMessages    Permissions = 1 << 13
	PermissionEmbedLinks        Permissions = 1 << 14
	PermissionAttachFiles       Permissions = 1 << 15
	PermissionReadHistory       Permissions = 1 << 16
	PermissionMentionEveryone   Permissions = 1 << 17
	PermissionUseExternalEmojis Permissions = 1 << 18
	PermissionVoiceConnect      Permissions = 1 << 20
	PermissionVoiceSpeak        Permissions = 1 << 21
	PermissionVoiceMuteMembers  Permissions = 1 << 22
	PermissionVoiceDeafMembers  Permissions = 1 << 23
	PermissionVoiceMoveMembers  Permissions = 1 << 24
	PermissionVoiceUseVAD       Permissions = 1 << 25
	PermissionChangeNickname    Permissions = 1 << 26
	PermissionManageNicknames   Permissions = 1 << 27
	PermissionManageRoles       Permissions = 1 << 28
	PermissionManageWebhooks    Permissions = 1 << 29
	PermissionManageEmojis      Permissions = 1 << 30
)

// PermissionsAll is the full capability mask, returned for club owners and
// administrators.
const PermissionsAll = PermissionCreateInvite |
	PermissionKickMembers |
	PermissionBanMembers |
	PermissionAdministrator |
	PermissionManageChannels |
	PermissionManageClub |
	PermissionAddReactions |
	PermissionViewAuditLog |
	PermissionPrioritySpeaker |
	PermissionStream |
	PermissionViewChannel |
	PermissionSendMessages |
	PermissionSendTTSMessages |
	PermissionManageMessages |
	PermissionEmbedLinks |
	PermissionAttachFiles |
	PermissionReadHistory |
	PermissionMentionEveryone |
	PermissionUseExternalEmojis |
	PermissionVoiceConnect |
	PermissionVoiceSpeak |
	PermissionVoiceMuteMembers |
	PermissionVoiceDeafMembers |
	PermissionVoiceMoveMembers |
	PermissionVoiceUseVAD |
	PermissionChangeNickname |
	PermissionManageNicknames |
	PermissionManageRoles |
	PermissionManageWebhooks |
	PermissionManageEmojis

// Has reports whether every bit in mask is set.
func (p Permissions) Has(mask Permissions) bool {
	return p&mask == mask
}

// Administrator reports whether the administrator bit is set. Administrators
// bypass every channel overwrite.
func (p Permissions) Administrator() bool {
	return p.Has(PermissionAdministrator)
}

// CanKickMembers reports whether the member may kick others club-wide.
func (p Permissions) CanKickMembers() bool {
	return p.Has(PermissionKickMembers)
}

// CanBanMembers reports whether the member may ban others club-wide.
func (p Permissions) CanBanMembers() bool {
	return p.Has(PermissionBanMembers)
}

// CanViewChannel reports whether the channel is visible at all.
func (p Permissions) CanViewChannel() bool {
	return p.Has(PermissionViewChannel)
}

// CanSendMessages reports whether text input is allowed.
func (p Permissions) CanSendMessages() bool {
	return p.Has(PermissionSendMessages)
}

// CanManageRoles reports whether role editing is allowed.
func (p Permissions) CanManageRoles() bool {
	return p.Has(PermissionManageRoles)
}

// CanConnect reports whether joining a voice channel is allowed.
func (p Permissions) CanConnect() bool {
	return p.Has(PermissionVoiceConnect)
}
