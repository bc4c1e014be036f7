package purpose

import "strings"

// Purpose selects which named-layer framework an assessment is scored
// against.
type Purpose string

const (
	Personal Purpose = "personal"
	Team     Purpose = "team"
	Business Purpose = "business"
	Policy   Purpose = "policy"
)

// Profile is one immutable assessment framework: five ordered layers with
// matching descriptions, the noun phrase used when talking about them, a
// display name, and the persona used to prime the completion service.
// Layer order is significant: callers supply scores positionally.
type Profile struct {
	Purpose      Purpose
	Framework    string
	Context      string
	Role         string
	Layers       []string
	Descriptions []string
}

var profiles = map[Purpose]Profile{
	Personal: {
		Purpose:   Personal,
		Framework: "Fixit Personal Framework",
		Context:   "life areas",
		Role: "You are a grounded, practical life-systems coach. You treat a person's life as a stack of interdependent areas " +
			"and help them find the smallest change with the biggest effect. You are direct but encouraging, and you never moralize.",
		Layers: []string{
			"Bio-Hardware",
			"Internal OS",
			"Cultural Software",
			"Social Instance",
			"Conscious User",
		},
		Descriptions: []string{
			"Physical foundations: sleep, energy, nutrition, movement, and health.",
			"Inner operating system: emotional regulation, habits, beliefs, and self-talk.",
			"Absorbed defaults: norms, expectations, and scripts picked up from upbringing and environment.",
			"Relationships and roles: family, friends, colleagues, and how the person shows up with them.",
			"Deliberate agency: attention, reflection, decision-making, and intentional direction.",
		},
	},
	Team: {
		Purpose:   Team,
		Framework: "Fixit Team Framework",
		Context:   "team dimensions",
		Role: "You are an experienced team coach and facilitator. You diagnose how a team's energy, working agreements, culture, " +
			"relationships, and self-awareness interact, and you recommend small concrete experiments over sweeping reorganizations.",
		Layers: []string{
			"Team Energy",
			"Working Agreements",
			"Team Culture",
			"Collaboration Fabric",
			"Team Awareness",
		},
		Descriptions: []string{
			"Capacity and sustainability: workload, pacing, recovery, and burnout risk.",
			"Explicit operating rules: processes, rituals, decision rights, and standards.",
			"Shared values in practice: safety to speak up, how conflict and failure are handled.",
			"Quality of working relationships inside the team and with neighboring teams.",
			"The team's ability to observe itself, retro honestly, and adjust course.",
		},
	},
	Business: {
		Purpose:   Business,
		Framework: "Fixit Business Framework",
		Context:   "business dimensions",
		Role: "You are a pragmatic business advisor for small and medium organizations. You connect operational symptoms to their " +
			"structural causes and favor changes an owner can start this quarter without outside capital.",
		Layers: []string{
			"Physical Capital",
			"Operating Systems",
			"Company Culture",
			"Market Position",
			"Leadership Awareness",
		},
		Descriptions: []string{
			"Tangible capacity: equipment, facilities, inventory, cash position, and tooling.",
			"How work flows: processes, systems, data, and the reliability of execution.",
			"How people behave when nobody is watching: incentives, norms, and morale.",
			"Relationships with customers, suppliers, and partners, and standing in the market.",
			"Leadership's grasp of the real state of the business and willingness to act on it.",
		},
	},
	Policy: {
		Purpose:   Policy,
		Framework: "Fixit Policy Framework",
		Context:   "policy dimensions",
		Role: "You are a policy analyst who explains institutional problems in plain language. You trace outcomes back through " +
			"infrastructure, institutions, civic culture, and service delivery, and you propose feasible incremental reforms.",
		Layers: []string{
			"Infrastructure",
			"Institutions",
			"Civic Culture",
			"Service Delivery",
			"Governance Awareness",
		},
		Descriptions: []string{
			"Physical and digital foundations: transport, utilities, connectivity, and public works.",
			"Rules and bodies: laws, regulation, enforcement, and administrative capacity.",
			"Shared civic habits: trust, participation, compliance, and public discourse.",
			"How services actually reach people: access, quality, and consistency of delivery.",
			"Whether decision-makers see accurate ground truth and correct course on it.",
		},
	},
}

// Resolve maps an arbitrary purpose tag to its profile. Unknown tags fall
// back to the personal profile; this is a silent default, never an error.
func Resolve(raw string) Profile {
	switch Purpose(strings.ToLower(strings.TrimSpace(raw))) {
	case Team:
		return profiles[Team]
	case Business:
		return profiles[Business]
	case Policy:
		return profiles[Policy]
	default:
		return profiles[Personal]
	}
}

// All returns the four known profiles in a stable order.
func All() []Profile {
	return []Profile{profiles[Personal], profiles[Team], profiles[Business], profiles[Policy]}
}
