package patterns

import (
	"regexp"
	"strings"
)

// removable phrases that carry no information about the name itself.
// Each is tried in its bracketed form first, then as a bare clause.
var removablePhrases = strings.Join([]string{
	`limited edition`,
	`\((?:digital )?album\)`,
	`\(single\)`,
	`\Wvinyl\W|vinyl-only|vinyl[^ ]*cd`,
	`compiled by.*`,
	`compilation: `,
	`[\[(](?:presented|selected) by.*`,
	`[ |-]*free download`,
	`[([][^])]*preview[])]`,
	`\W\W?bonus(?: \w+)*`,
	`Various -`,
	`split w`,
	`CD ?\d+`,
	`Name Your Price:`,
	`just out!`,
	`- album`,
}, "|")

// replacement is one entry of the name-cleaning table.
type replacement struct {
	pat  *regexp.Regexp
	repl string
}

// cleanReplacements is applied in order; the sequence is idempotent on
// already-clean input.
var cleanReplacements = []replacement{
	{regexp.MustCompile(`(?i)^EP -`), ""},
	{regexp.MustCompile(`(?i)[([]\*?(?:` + removablePhrases + `)[])]`), ""},
	{regexp.MustCompile(`(?i)(?:^| )\*?(?:` + removablePhrases + `)(?:[- ]|$)`), " "},
	{regexp.MustCompile(` -([^\s-])`), " - $1"},                                 // hi -bye      -> hi - bye
	{regexp.MustCompile(`([^\s-])- `), "$1 - "},                                 // hi- bye      -> hi - bye
	{regexp.MustCompile(`  +`), " "},                                            // hi  bye      -> hi bye
	{regexp.MustCompile(`(?:- )?\( *`), "("},                                    // hi - ( bye)  -> hi (bye)
	{regexp.MustCompile(` \)+|\)+$`), ")"},                                      // hi (bye ))   -> hi (bye)
	{regexp.MustCompile(`- Reworked`), "(Reworked)"},                            // bye - Reworked -> bye (Reworked)
	{regexp.MustCompile(`(?i)(\([^)]+mix)$`), "$1)"},                            // (Some Mix    -> (Some Mix)
	{regexp.MustCompile(`(^|- )[“"]([^”"]+)[”"]( \(|$)`), "$1$2$3"},             // hi - "bye"   -> hi - bye
	{regexp.MustCompile(`(?i)\((?:the )?(remixes)\)`), "$1"},                    // (Remixes)    -> Remixes
	{regexp.MustCompile(`^(\[[^]-]+\]) - ((?:[^-]|-\w)+ - (?:[^-]|-\w)+)$`), "$2 $1"}, // [Remixer] - hi - bye -> hi - bye [Remixer]
	{regexp.MustCompile(`"([^"]+)" by (.+)$`), "$2 - $1"},                       // "bye" by hi  -> hi - bye
}

// bracketed "free" clause that is not a remix credit.
var freeClausePat = regexp.MustCompile(`(?i)[([][^])]*free\b[^])]*[])]`)

// CleanName strips marketplace noise from album and track names. The same
// table serves both, so the pipeline is a fixed point: cleaning already
// clean input changes nothing.
func CleanName(name string) string {
	if name == "" {
		return name
	}

	name = freeClausePat.ReplaceAllStringFunc(name, func(m string) string {
		if strings.Contains(strings.ToLower(m), "mix") {
			return m
		}
		return ""
	})
	for _, r := range cleanReplacements {
		name = strings.TrimSpace(r.pat.ReplaceAllString(name, r.repl))
	}

	return name
}
