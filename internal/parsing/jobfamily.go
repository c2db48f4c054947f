package parsing

import (
	"github.com/jonathan/fairscreen/internal/types"
)

// familyKeywords maps each job family to the tokens that signal it. Tokens
// are stored pre-normalized (lowercase, singular) so classification can
// compare against Tokenize output directly.
var familyKeywords = map[types.JobFamily][]string{
	types.FamilySoftwareEngineering: {
		"software", "engineer", "developer", "backend", "frontend", "fullstack",
		"api", "golang", "java", "python", "javascript", "microservice", "code",
		"programming", "devop", "cloud", "kubernete", "database",
	},
	types.FamilyDataScience: {
		"data", "scientist", "machine", "learning", "ml", "statistic", "model",
		"analytic", "panda", "tensorflow", "pytorch", "sql", "etl", "pipeline",
	},
	types.FamilyProductManagement: {
		"product", "manager", "roadmap", "backlog", "stakeholder", "agile",
		"scrum", "requirement", "prioritization", "launch",
	},
	types.FamilyDesign: {
		"design", "designer", "ux", "ui", "figma", "prototype", "wireframe",
		"visual", "typography", "usability",
	},
	types.FamilyMarketing: {
		"marketing", "campaign", "seo", "brand", "content", "social", "media",
		"advertising", "growth", "email",
	},
	types.FamilySales: {
		"sale", "account", "quota", "crm", "salesforce", "prospecting",
		"negotiation", "deal", "revenue", "client",
	},
	types.FamilyFinance: {
		"finance", "financial", "accounting", "audit", "budget", "forecast",
		"tax", "ledger", "cpa", "treasury",
	},
	types.FamilyHumanResources: {
		"hr", "recruiting", "recruiter", "talent", "onboarding", "payroll",
		"benefit", "employee", "hiring", "compensation",
	},
	types.FamilyOperations: {
		"operation", "logistic", "supply", "chain", "procurement", "inventory",
		"warehouse", "process", "vendor", "fulfillment",
	},
	types.FamilyCustomerSupport: {
		"support", "customer", "service", "helpdesk", "ticket", "zendesk",
		"escalation", "satisfaction", "call", "resolution",
	},
}

// AssignJobFamily classifies a candidate into one of the ten job families by
// keyword overlap. The target role is scored when present, otherwise the
// skills and resume body. Highest overlap count wins; ties break toward the
// earlier family in enumeration order, which keeps assignment deterministic.
func AssignJobFamily(c *types.Candidate) types.JobFamily {
	if c.JobFamily != "" {
		return c.JobFamily
	}

	var tokens []string
	if c.TargetRole != "" {
		tokens = Tokenize(c.TargetRole)
	} else {
		tokens = Tokenize(c.ResumeText)
		for _, s := range c.Skills {
			tokens = append(tokens, Tokenize(s)...)
		}
	}

	tokenSet := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		tokenSet[t] = true
	}

	best := types.FamilySoftwareEngineering
	bestOverlap := -1
	for _, family := range types.JobFamilies() {
		overlap := 0
		for _, kw := range familyKeywords[family] {
			if tokenSet[kw] {
				overlap++
			}
		}
		if overlap > bestOverlap {
			best = family
			bestOverlap = overlap
		}
	}
	return best
}
