package protocol

// DefaultTableSpec is the version table observed against the Overte 2025.05.1
// release. It is a starting point, not a settled constant: the peer decides
// which table is right, so integrators are expected to supply their own spec
// through configuration or resolve this one against the release's reference
// header. Entries carrying a Source take that counter's value when the spec
// is resolved; the recorded Version is the last value observed and entries
// marked unverified have not been checked against a release header.
func DefaultTableSpec() TableSpec {
	return TableSpec{
		PacketTypes:    137,
		DefaultVersion: 22,
		Overrides: []Override{
			// DomainConnectRequestPending
			{Indices: []int{1}, Version: 17},
			// DomainList, DomainConnectRequest, DomainListRequest,
			// DomainServerAddedNode
			{Indices: []int{2, 31, 13, 17}, Source: "DomainListVersion::SocketTypes", Version: 25},
			// EntityAdd, EntityClone, EntityEdit, EntityData, EntityPhysics
			// all ride the entity version counter
			{Indices: []int{23, 88, 25, 21, 68}, Source: "EntityVersion::LAST_PACKET_TYPE", Version: 118}, // unverified
			// EntityQuery
			{Indices: []int{22}, Source: "EntityQueryPacketVersion::ConicalFrustums", Version: 22},
			// AvatarIdentity, AvatarData, BulkAvatarData, KillAvatar
			{Indices: []int{29, 6, 11, 5}, Source: "AvatarMixerPacketVersion::RemoveAttachments", Version: 25},
			// MessagesData
			{Indices: []int{57}, Version: 18},
			// ICEServerPeerInformation, ICEServerHeartbeatACK, ICEServerQuery,
			// ICEPingReply
			{Indices: []int{18, 63, 19, 40}, Version: 17},
			// ICEServerHeartbeat, ICEPing
			{Indices: []int{38, 39}, Version: 18},
			// AssetMappingOperation, AssetMappingOperationReply, AssetGetInfo,
			// AssetGet, AssetUpload
			{Indices: []int{61, 62, 53, 49, 51}, Source: "AssetServerPacketVersion::BakingTextureMeta", Version: 24},
			// NodeIgnoreRequest
			{Indices: []int{30}, Version: 18},
			// DomainConnectionDenied
			{Indices: []int{16}, Version: 18},
			// EntityScriptCallMethod
			{Indices: []int{92}, Version: 19},
			// MixedAudio, SilentAudioFrame, InjectAudio, MicrophoneAudioNoEcho,
			// MicrophoneAudioWithEcho, AudioStreamStats, StopInjector. Index 18
			// also appears in the ICE group above; this group is declared
			// later, so the audio version wins there.
			{Indices: []int{8, 12, 7, 9, 10, 18, 103}, Source: "AudioVersion::StopInjectors", Version: 24},
			// DomainSettings
			{Indices: []int{48}, Version: 18},
			// Ping
			{Indices: []int{3}, Version: 18},
			// AvatarQuery
			{Indices: []int{72}, Version: 22},
			// EntityQueryInitialResultsComplete
			{Indices: []int{89}, Source: "EntityVersion::ParticleSpin", Version: 68}, // unverified
			// BulkAvatarTraitsAck, BulkAvatarTraits
			{Indices: []int{102, 90}, Version: 26},
		},
	}
}
