package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/docsift/docsift/internal/entities"
	"github.com/docsift/docsift/internal/entity"
)

var (
	reEducation  = regexp.MustCompile(`(?i)(?:Bachelor|Master|PhD|B\.S\.|M\.S\.|M\.A\.|B\.A\.|MBA)[^\n]*`)
	reExperience = regexp.MustCompile(`(?i)(\d+)\s*\+?\s*years?(?:\s+of\s+experience)?`)

	// job-entry shapes inside an experience section
	rePipeCompany = regexp.MustCompile(`\|\s*([^|\n]+?)\s*\|`)
	reAtCompany   = regexp.MustCompile(`(?:at\s+|@\s+)([A-Z][^,\n]+?)(?:\s*,|\s*\n|\s*$)`)

	reExperienceHeader = regexp.MustCompile(`(?i)(?:Professional\s+)?Experience:`)
	reSectionEnd       = regexp.MustCompile(`(?i)Education:|Certifications:`)
)

// Terms that disqualify an ORG entity from being a previous employer:
// schools, tech stack nouns, role titles, section headers.
var companyBlacklist = []string{
	"university", "school", "college", "institute", "academy",
	"react", "css", "html", "node", "s3", "javascript", "python",
	"aws", "azure", "gcp", "mysql", "postgresql", "mongodb",
	"professional summary", "bachelor", "master", "certification",
	"developer", "engineer", "manager", "analyst", "designer",
	"api", "rest", "sql", "json", "xml", "http", "https",
	"git", "docker", "kubernetes", "jenkins",
}

// extractResume populates a resume record from text plus the entity bag.
func extractResume(text string, bag *entities.Bag) *entity.ResumeRecord {
	rec := &entity.ResumeRecord{
		CandidateName:     candidateName(text),
		Skills:            matchSkills(text),
		Education:         reEducation.FindAllString(text, -1),
		ExperienceYears:   experienceYears(text),
		PreviousCompanies: previousCompanies(text, bag),
		Locations:         bag.GPE,
	}
	if len(bag.Emails) > 0 {
		rec.Email = bag.Emails[0]
	}
	if len(bag.Phones) > 0 {
		rec.Phone = bag.Phones[0]
	}
	return rec
}

// candidateName is the first non-empty line free of ':', '|' and '@' — label
// lines, job-entry rows and contact lines all carry one of those.
func candidateName(text string) string {
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.ContainsAny(line, ":|@") {
			continue
		}
		return trimmed
	}
	return ""
}

// matchSkills intersects the document with the fixed vocabulary using a
// case-insensitive substring test.
func matchSkills(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	for _, skill := range skillsVocabulary {
		if strings.Contains(lower, strings.ToLower(skill)) {
			found = append(found, skill)
		}
	}
	return found
}

// experienceYears parses the first "<N>+ years" mention.
func experienceYears(text string) *int {
	m := reExperience.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	return &n
}

// previousCompanies unions filtered ORG entities with company names captured
// from the experience section.
func previousCompanies(text string, bag *entities.Bag) []string {
	var companies []string
	for _, org := range bag.Org {
		clean := strings.TrimSpace(org)
		if len(clean) < 3 {
			continue
		}
		if blacklisted(clean) {
			continue
		}
		// section-header shapes and embedded newlines are not companies
		if strings.HasSuffix(clean, ":") || strings.Contains(clean, "\n") {
			continue
		}
		// short all-caps tokens are acronyms or tech terms
		if clean == strings.ToUpper(clean) && strings.ToLower(clean) != clean && len(clean) < 10 {
			continue
		}
		companies = append(companies, clean)
	}

	if section := experienceSection(text); section != "" {
		for _, p := range []*regexp.Regexp{rePipeCompany, reAtCompany} {
			for _, m := range p.FindAllStringSubmatch(section, -1) {
				clean := strings.TrimSpace(m[1])
				if len(clean) > 2 && !blacklisted(clean) {
					companies = append(companies, clean)
				}
			}
		}
	}

	return dedupe(companies)
}

// experienceSection bounds the text between an "Experience:" header and the
// first "Education:"/"Certifications:" header after it. RE2 has no lookahead,
// so the bounds are located by index instead of a single pattern.
func experienceSection(text string) string {
	loc := reExperienceHeader.FindStringIndex(text)
	if loc == nil {
		return ""
	}
	rest := text[loc[1]:]
	if end := reSectionEnd.FindStringIndex(rest); end != nil {
		rest = rest[:end[0]]
	}
	return rest
}

func blacklisted(s string) bool {
	lower := strings.ToLower(s)
	for _, kw := range companyBlacklist {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
