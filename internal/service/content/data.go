package content

// siteContent is the single source of truth for the site copy. Edits
// here ship with the next deploy; there is no CMS behind it.
var siteContent = Site{
	Brand: "cvlSoft",
	Nav: []NavItem{
		{Label: "Platform", Href: "#platform"},
		{Label: "Safety", Href: "#safety"},
		{Label: "Connectors", Href: "#connectors"},
		{Label: "Flow", Href: "#how-it-works"},
		{Label: "Request Demo", Href: "#demo"},
	},
	Hero: Hero{
		Eyebrow:             "Enterprise Autonomy Platform",
		Headline:            "Stop Building Brittle Agent Workflows",
		CategoryStatement:   "cvlSoft turns tribal operational knowledge into safe autonomous execution.",
		ContrarianStatement: "Most vendors hand-build custom agent flows that decay into maintenance debt.",
		Thesis:              "We ingest observational knowledge + SOPs + MPs into reusable super agents with deterministic controls.",
		Subhead:             "Enterprise autonomy without automation debt.",
		PrimaryCTA:          "Request Demo",
		SecondaryCTA:        "See Platform",
	},
	IndustryMistakes: []IndustryMistake{
		{
			Title:   "Workflow sprawl",
			Problem: "Every use case becomes bespoke logic.",
			Impact:  "Result: fragile systems and poor reuse.",
		},
		{
			Title:   "Point solutions",
			Problem: "Automation is tied to individual apps.",
			Impact:  "Result: breakage when environments shift.",
		},
		{
			Title:   "Maintenance tax",
			Problem: "Teams spend cycles patching drift.",
			Impact:  "Result: reliability erodes over time.",
		},
	},
	IndustryClose:      "Point solutions create automation debt. cvlSoft creates operational leverage.",
	DifferentiatorLine: "Others stitch flows. We compile durable capability.",
	Differentiators: []Differentiator{
		{
			Title:  "Observational learning",
			Detail: "Capture tacit operator behavior.",
			Proof:  "Real-world execution logic.",
		},
		{
			Title:  "SOP + MP ingestion",
			Detail: "Convert process docs into action.",
			Proof:  "Certified machine-operable skills.",
		},
		{
			Title:  "Core super agents",
			Detail: "Reusable agent system, not one-offs.",
			Proof:  "Lower brittleness, less overhead.",
		},
		{
			Title:  "Composable SME layer",
			Detail: "SMEs compose outcomes directly.",
			Proof:  "No agentic AI expertise required.",
		},
		{
			Title:  "Forward deploy teams",
			Detail: "Built for enterprise reality.",
			Proof:  "Faster integration adoption.",
		},
		{
			Title:  "Security + observability",
			Detail: "Deterministic policy and evidence.",
			Proof:  "Traceable, auditable autonomy.",
		},
		{
			Title:  "Connector fabric",
			Detail: "API and no-API under one contract.",
			Proof:  "Swap backends without skill rewrites.",
		},
	},
	ProofPoints: []ProofPoint{
		{Label: "SOP Compiler", Statement: "SOPs become constrained skill specs."},
		{Label: "Capability Graph", Statement: "Typed capability nodes, system-agnostic."},
		{Label: "Policy Gate", Statement: "Deterministic allow/deny enforcement."},
		{Label: "Evidence Store", Statement: "Replay-grade logs with redaction."},
	},
	Platform: Platform{
		ControlPlane: []string{
			"Ingest + normalize SOP/MP",
			"Compile + certify skills",
			"Govern policy and approvals",
		},
		DataPlane: []string{
			"Orchestrate isolated execution",
			"Route via tool gateway",
			"Breakers, budgets, kill switches",
		},
	},
	Safety: []string{
		"Multi-level circuit breakers",
		"Hard kill, soft kill, quarantine",
		"Ephemeral scoped credentials",
		"Evidence-first replay and audit",
	},
	Connectors: []Connector{
		{Type: "Native API", Description: "REST, GraphQL, SOAP, gRPC"},
		{Type: "Database", Description: "Read replicas and governed writes"},
		{Type: "Event and Queue", Description: "Kafka, MQ, pub-sub workflows"},
		{Type: "RPA", Description: "Deterministic UI automation"},
		{Type: "Terminal and Mainframe", Description: "TN3270, TN5250, SSH flows"},
		{Type: "Browser and Desktop", Description: "Computer-use orchestration"},
	},
	Flow: []RuntimeStep{
		{Step: "Select certified skill", Description: "Pick constrained execution plan."},
		{Step: "Policy validates action", Description: "Allow or deny before execution."},
		{Step: "Connector executes", Description: "Run capability with scoped creds."},
		{Step: "Evidence and postcheck", Description: "Verify outcome or stop safely."},
	},
}
