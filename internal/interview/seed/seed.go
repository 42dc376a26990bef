// Package seed provides the fixture characters and companies loaded
// into the in-memory repositories at startup.
package seed

import (
	"github.com/nkove/interviewd/internal/interview/models"
)

// Characters returns the fixture interviewer roster: every role is
// represented, with mixed genders and company affinities.
func Characters() []*models.Character {
	return []*models.Character{
		models.NewCharacter(
			mustName("Sofia Martinez"),
			models.RoleHR,
			models.GenderFemale,
			models.CompanyTypeStartup,
			mustDescription("Passionate HR professional with expertise in building inclusive startup cultures and identifying top talent."),
			models.Personality{
				Traits:             []string{"empathetic", "communicative", "intuitive", "collaborative"},
				CommunicationStyle: "warm and approachable, focuses on cultural fit and team dynamics",
				ExpertiseAreas:     []string{"culture building", "diversity & inclusion", "team dynamics", "employee engagement"},
				InterviewApproach:  "focuses on behavioral questions, team fit, and company values alignment",
			},
			models.Appearance{
				AvatarURL:        "/avatars/sofia-martinez.jpg",
				IdleVideoURL:     "/videos/sofia-martinez-idle.mp4",
				GreetingVideoURL: "/videos/sofia-martinez-greeting.mp4",
				ThinkingVideoURL: "/videos/sofia-martinez-thinking.mp4",
			},
		),
		models.NewCharacter(
			mustName("James Chen"),
			models.RoleHR,
			models.GenderMale,
			models.CompanyTypeFAANG,
			mustDescription("Senior HR Business Partner with extensive experience in scaling teams at major tech companies."),
			models.Personality{
				Traits:             []string{"analytical", "strategic", "professional", "detail-oriented"},
				CommunicationStyle: "structured and thorough, emphasizes process and scalability",
				ExpertiseAreas:     []string{"talent acquisition", "performance management", "organizational development", "compliance"},
				InterviewApproach:  "systematic evaluation of experience, leadership potential, and cultural alignment",
			},
			models.Appearance{
				AvatarURL:        "/avatars/james-chen.jpg",
				IdleVideoURL:     "/videos/james-chen-idle.mp4",
				GreetingVideoURL: "/videos/james-chen-greeting.mp4",
			},
		),
		models.NewCharacter(
			mustName("Alex Rodriguez"),
			models.RoleTechLead,
			models.GenderMale,
			models.CompanyTypeStartup,
			mustDescription("Full-stack tech lead with a passion for mentoring and building scalable solutions in fast-paced environments."),
			models.Personality{
				Traits:             []string{"innovative", "mentoring", "pragmatic", "collaborative"},
				CommunicationStyle: "hands-on and practical, enjoys diving into technical details",
				ExpertiseAreas:     []string{"full-stack development", "system architecture", "team leadership", "agile methodologies"},
				InterviewApproach:  "focuses on problem-solving, coding skills, and technical leadership experience",
			},
			models.Appearance{
				AvatarURL:        "/avatars/alex-rodriguez.jpg",
				IdleVideoURL:     "/videos/alex-rodriguez-idle.mp4",
				GreetingVideoURL: "/videos/alex-rodriguez-greeting.mp4",
			},
		),
		models.NewCharacter(
			mustName("Emily Watson"),
			models.RoleTechLead,
			models.GenderFemale,
			models.CompanyTypeEnterprise,
			mustDescription("Experienced technical architect specializing in enterprise-grade solutions and team development."),
			models.Personality{
				Traits:             []string{"systematic", "thorough", "reliable", "strategic"},
				CommunicationStyle: "methodical and comprehensive, emphasizes best practices and standards",
				ExpertiseAreas:     []string{"enterprise architecture", "security", "compliance", "technical standards"},
				InterviewApproach:  "evaluates architectural thinking, risk awareness, and adherence to standards",
			},
			models.Appearance{
				AvatarURL:        "/avatars/emily-watson.jpg",
				IdleVideoURL:     "/videos/emily-watson-idle.mp4",
				GreetingVideoURL: "/videos/emily-watson-greeting.mp4",
			},
		),
		models.NewCharacter(
			mustName("Marcus Webb"),
			models.RoleCTO,
			models.GenderMale,
			models.CompanyTypeStartup,
			mustDescription("Visionary CTO who has scaled engineering organizations from five to two hundred people."),
			models.Personality{
				Traits:             []string{"visionary", "decisive", "curious", "direct"},
				CommunicationStyle: "big-picture and candid, probes for ownership and ambition",
				ExpertiseAreas:     []string{"technical strategy", "organizational scaling", "product engineering", "fundraising"},
				InterviewApproach:  "explores technical vision, leadership philosophy, and appetite for ambiguity",
			},
			models.Appearance{
				AvatarURL:        "/avatars/marcus-webb.jpg",
				IdleVideoURL:     "/videos/marcus-webb-idle.mp4",
				GreetingVideoURL: "/videos/marcus-webb-greeting.mp4",
			},
		),
		models.NewCharacter(
			mustName("Priya Sharma"),
			models.RoleProductManager,
			models.GenderFemale,
			models.CompanyTypeFAANG,
			mustDescription("Senior product manager focused on data-informed decisions and user-centered design at scale."),
			models.Personality{
				Traits:             []string{"user-focused", "analytical", "collaborative", "articulate"},
				CommunicationStyle: "inquisitive and structured, frames everything around user impact",
				ExpertiseAreas:     []string{"product strategy", "experimentation", "roadmapping", "stakeholder management"},
				InterviewApproach:  "tests product sense, prioritization, and cross-functional communication",
			},
			models.Appearance{
				AvatarURL:        "/avatars/priya-sharma.jpg",
				IdleVideoURL:     "/videos/priya-sharma-idle.mp4",
				GreetingVideoURL: "/videos/priya-sharma-greeting.mp4",
			},
		),
		models.NewCharacter(
			mustName("Daniel Kim"),
			models.RoleSeniorEngineer,
			models.GenderMale,
			models.CompanyTypeEnterprise,
			mustDescription("Staff engineer who enjoys deep technical conversations about distributed systems and code quality."),
			models.Personality{
				Traits:             []string{"precise", "patient", "depth-first", "pragmatic"},
				CommunicationStyle: "calm and detailed, works through problems step by step",
				ExpertiseAreas:     []string{"distributed systems", "databases", "performance", "code review"},
				InterviewApproach:  "pair-programming style problems with emphasis on reasoning out loud",
			},
			models.Appearance{
				AvatarURL:        "/avatars/daniel-kim.jpg",
				IdleVideoURL:     "/videos/daniel-kim-idle.mp4",
				GreetingVideoURL: "/videos/daniel-kim-greeting.mp4",
			},
		),
	}
}

// Companies returns the fixture hiring companies, one per type.
func Companies() []*models.Company {
	return []*models.Company{
		models.NewCompany(
			mustName("Nimbus Labs"),
			models.CompanyTypeStartup,
			mustDescription("Seed-stage startup building collaborative tooling for distributed teams."),
			models.CompanyProfile{
				Industry:  "developer tools",
				Size:      "11-50",
				Culture:   []string{"move fast", "ownership", "flat hierarchy"},
				Values:    []string{"transparency", "customer obsession", "bias for action"},
				TechStack: []string{"Go", "TypeScript", "PostgreSQL", "Kubernetes"},
				Benefits:  []string{"equity", "remote-first", "learning budget"},
			},
		),
		models.NewCompany(
			mustName("Vantagon"),
			models.CompanyTypeFAANG,
			mustDescription("Global technology company operating consumer products used by billions."),
			models.CompanyProfile{
				Industry:  "consumer internet",
				Size:      "10000+",
				Culture:   []string{"data-driven", "high bar", "scale thinking"},
				Values:    []string{"innovation", "rigor", "impact"},
				TechStack: []string{"C++", "Java", "Python", "Spanner"},
				Benefits:  []string{"top-of-market compensation", "on-site everything", "sabbaticals"},
			},
		),
		models.NewCompany(
			mustName("Meridian Systems"),
			models.CompanyTypeEnterprise,
			mustDescription("Established enterprise software vendor serving regulated industries for three decades."),
			models.CompanyProfile{
				Industry:  "enterprise software",
				Size:      "1000-5000",
				Culture:   []string{"stability", "mentorship", "process maturity"},
				Values:    []string{"reliability", "integrity", "long-term thinking"},
				TechStack: []string{"Java", "Oracle", "Kafka"},
				Benefits:  []string{"pension", "healthcare", "flexible hours"},
			},
		),
	}
}

// mustName and mustDescription panic on invalid fixture literals; the
// data is static, so a failure here is a programming error caught by
// the package tests.
func mustName(value string) models.Name {
	name, err := models.NewName(value)
	if err != nil {
		panic(err)
	}
	return name
}

func mustDescription(value string) models.Description {
	description, err := models.NewDescription(value)
	if err != nil {
		panic(err)
	}
	return description
}
