package catalog

// builtin is the AI-SDLC phase catalog, in article order.
var builtin = []Phase{
	{
		Name:              "specify",
		Prefix:            "21",
		FrameworkSubtitle: "Intelligent Methodology &\nPattern Recognition",
		ConnectionLabel:   "Provides Methodology\nTemplates & Patterns",
		UseCases: []UseCase{
			{"Task Writing", "Generates structured requirements, user stories, and acceptance criteria based on best practices.", "task_writing"},
			{"Backlog", "Prioritizes and organizes backlog items, identifying dependencies and potential bottlenecks.", "backlog"},
			{"Interview Mode", "Simulates stakeholder interviews to elicit requirements, refine scope, and clarify ambiguity.", "interview"},
		},
	},
	{
		Name:              "design",
		Prefix:            "22",
		FrameworkSubtitle: "Architecture Patterns &\nDesign Standards",
		ConnectionLabel:   "Provides Architecture\nPatterns & Standards",
		UseCases: []UseCase{
			{"Architecture", "Generates component diagrams, data models, and ADRs following established patterns.", "architecture"},
			{"Specifications", "Produces detailed technical requirements, API contracts, and integration points.", "specifications"},
			{"UI/UX Design", "Creates mockups, applies design tokens, and ensures accessibility compliance.", "ui_design"},
			{"Documentation", "Generates architecture docs, API references, and onboarding guides from code.", "documentation"},
		},
	},
	{
		Name:              "develop",
		Prefix:            "23",
		FrameworkSubtitle: "Code Patterns &\nConventions",
		ConnectionLabel:   "Provides Code Patterns\n& Conventions",
		UseCases: []UseCase{
			{"Code Generation", "Generates code following naming conventions, patterns, and module boundaries.", "code_generation"},
			{"Codebase Q&A", "Answers questions about code, traces dependencies, and analyzes impact.", "codebase"},
			{"Migration", "Detects patterns, generates codemods, and aligns with latest standards.", "migration"},
			{"Agentic Tasks", "Executes multi-step tasks: scaffolding, refactoring, and validation.", "agentic"},
		},
	},
	{
		Name:              "validate",
		Prefix:            "24",
		FrameworkSubtitle: "Quality Standards &\nReview Patterns",
		ConnectionLabel:   "Provides Quality\nStandards & Rules",
		UseCases: []UseCase{
			{"PR Automation", "Generates PR descriptions, lists affected components, and highlights risks.", "pr_automation"},
			{"Code Review", "Reviews for pattern violations, security issues, and missing coverage.", "code_review"},
			{"Quality Gates", "Enforces module boundaries, dependency rules, and architecture constraints.", "quality_gates"},
			{"Self-Healing CI", "Reads error logs, proposes fixes, and opens PRs to resolve failures.", "self_healing"},
		},
	},
	{
		Name:              "release",
		Prefix:            "25",
		FrameworkSubtitle: "Release Patterns &\nCommunication Templates",
		ConnectionLabel:   "Provides Release\nTemplates & Formats",
		UseCases: []UseCase{
			{"Changelog", "Generates changelogs, release notes, and migration guides from commits.", "changelog"},
			{"Communication", "Prepares stakeholder announcements and customer-facing updates.", "communication"},
			{"Deployment", "Validates configurations, compares environments, and supports rollback.", "deployment"},
			{"Incident Analysis", "Correlates issues with changes, analyzes logs, and suggests root causes.", "incident"},
		},
	},
	{
		Name:              "maintain",
		Prefix:            "26",
		FrameworkSubtitle: "Evolution Patterns &\nUpgrade Paths",
		ConnectionLabel:   "Provides Evolution\nPatterns & Strategies",
		UseCases: []UseCase{
			{"Refactoring", "Performs large-scale refactoring with impact analysis and validation.", "refactoring"},
			{"Upgrades", "Reads changelogs, identifies breaking changes, and proposes migrations.", "upgrades"},
			{"Tech Debt", "Identifies and quantifies tech debt with prioritized remediation plans.", "tech_debt"},
			{"Cross-Repo", "Coordinates changes across repositories and ensures consistency.", "cross_repo"},
		},
	},
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(builtin)
	if err != nil {
		panic("catalog: invalid built-in catalog: " + err.Error())
	}
	return c
}
