// Package identity provides a static roster implementation of the
// identity collaborator, for processes configured from the environment.
// A live deployment substitutes the platform's user service behind the
// same contract.
package identity

import "runar/domain"

// Participant is one roster entry.
type Participant struct {
	ID        string
	Name      string
	AvatarRef string
	Moderator bool
	Connected bool
}

// Roster is one session's static view: who exists, who moderates, who
// is connected, and which id is "self".
type Roster struct {
	selfID       string
	participants map[string]Participant
}

func NewRoster(selfID string, participants []Participant) *Roster {
	m := make(map[string]Participant, len(participants))
	for _, p := range participants {
		m[p.ID] = p
	}
	return &Roster{selfID: selfID, participants: m}
}

func (r *Roster) CurrentParticipantID() string { return r.selfID }

func (r *Roster) ParticipantName(id string) string {
	if p, ok := r.participants[id]; ok {
		return p.Name
	}
	return id
}

func (r *Roster) ParticipantAvatar(id string) string {
	return r.participants[id].AvatarRef
}

func (r *Roster) IsModerator(id string) bool {
	return r.participants[id].Moderator
}

func (r *Roster) IsConnected(id string) bool {
	return r.participants[id].Connected
}

func (r *Roster) ConnectedParticipants() []string {
	var out []string
	for id, p := range r.participants {
		if p.Connected {
			out = append(out, id)
		}
	}
	return out
}

// ActiveModerator returns the first connected moderator. The protocol
// assumes at most one moderator session is active; two concurrently
// active moderator sessions make whole-blob persistence last-write-wins
// (a documented gap, not handled here).
func (r *Roster) ActiveModerator() (string, bool) {
	for id, p := range r.participants {
		if p.Moderator && p.Connected {
			return id, true
		}
	}
	return "", false
}

// SelfSpeaker builds the default speaker identity for the session.
func (r *Roster) SelfSpeaker() domain.Speaker {
	p := r.participants[r.selfID]
	return domain.Speaker{
		Kind:      domain.SpeakerParticipant,
		ID:        p.ID,
		Name:      p.Name,
		AvatarRef: p.AvatarRef,
	}
}
