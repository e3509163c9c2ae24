package dictionary

import (
	"sync"

	"github.com/jonathan/jobradar/internal/types"
)

// defaultEntries is the built-in skill dictionary. Declared order matters:
// when two aliases of equal length claim the same text span, the earlier
// entry wins.
var defaultEntries = []SkillEntry{
	// Languages
	{Canonical: "Python", Category: types.CategoryLanguage, Aliases: []string{"python3", "py"}},
	{Canonical: "Java", Category: types.CategoryLanguage},
	{Canonical: "JavaScript", Category: types.CategoryLanguage, Aliases: []string{"js", "ecmascript"}},
	{Canonical: "TypeScript", Category: types.CategoryLanguage, Aliases: []string{"ts"}},
	{Canonical: "Go", Category: types.CategoryLanguage, Aliases: []string{"golang"}},
	{Canonical: "C#", Category: types.CategoryLanguage, Aliases: []string{"csharp", "c sharp"}},
	{Canonical: "C++", Category: types.CategoryLanguage, Aliases: []string{"cpp", "cplusplus"}},
	{Canonical: "Ruby", Category: types.CategoryLanguage},
	{Canonical: "PHP", Category: types.CategoryLanguage},
	{Canonical: "Rust", Category: types.CategoryLanguage},
	{Canonical: "Scala", Category: types.CategoryLanguage},
	{Canonical: "Kotlin", Category: types.CategoryLanguage},
	{Canonical: "Swift", Category: types.CategoryLanguage},
	{Canonical: "SQL", Category: types.CategoryLanguage},
	{Canonical: "Bash", Category: types.CategoryLanguage, Aliases: []string{"shell scripting", "shell"}},
	{Canonical: "PowerShell", Category: types.CategoryLanguage},

	// Frameworks
	{Canonical: "React", Category: types.CategoryFramework, Aliases: []string{"react.js", "reactjs"}},
	{Canonical: "Angular", Category: types.CategoryFramework, Aliases: []string{"angularjs"}},
	{Canonical: "Vue", Category: types.CategoryFramework, Aliases: []string{"vue.js", "vuejs"}},
	{Canonical: "Node.js", Category: types.CategoryFramework, Aliases: []string{"nodejs", "node"}},
	{Canonical: "Django", Category: types.CategoryFramework},
	{Canonical: "Flask", Category: types.CategoryFramework},
	{Canonical: "FastAPI", Category: types.CategoryFramework},
	{Canonical: "Spring", Category: types.CategoryFramework, Aliases: []string{"spring boot", "springboot"}},
	{Canonical: "Express", Category: types.CategoryFramework, Aliases: []string{"express.js", "expressjs"}},
	{Canonical: ".NET", Category: types.CategoryFramework, Aliases: []string{"dotnet", "dot net"}},
	{Canonical: ".NET Core", Category: types.CategoryFramework, Aliases: []string{"dotnet core"}},
	{Canonical: ".NET Framework", Category: types.CategoryFramework},
	{Canonical: "Rails", Category: types.CategoryFramework, Aliases: []string{"ruby on rails"}},
	{Canonical: "Laravel", Category: types.CategoryFramework},
	{Canonical: "GraphQL", Category: types.CategoryFramework},
	{Canonical: "gRPC", Category: types.CategoryFramework},
	{Canonical: "REST", Category: types.CategoryFramework, Aliases: []string{"rest api", "restful"}},

	// Cloud
	{Canonical: "AWS", Category: types.CategoryCloud, Aliases: []string{"amazon web services"}},
	{Canonical: "Azure", Category: types.CategoryCloud, Aliases: []string{"microsoft azure"}},
	{Canonical: "GCP", Category: types.CategoryCloud, Aliases: []string{"google cloud", "google cloud platform"}},
	{Canonical: "Lambda", Category: types.CategoryCloud, Aliases: []string{"aws lambda"}},
	{Canonical: "S3", Category: types.CategoryCloud},

	// DevOps
	{Canonical: "Docker", Category: types.CategoryDevOps},
	{Canonical: "Kubernetes", Category: types.CategoryDevOps, Aliases: []string{"k8s"}},
	{Canonical: "Terraform", Category: types.CategoryDevOps},
	{Canonical: "Ansible", Category: types.CategoryDevOps},
	{Canonical: "Jenkins", Category: types.CategoryDevOps},
	{Canonical: "CI/CD", Category: types.CategoryDevOps, Aliases: []string{"cicd", "ci-cd"}},
	{Canonical: "CI", Category: types.CategoryDevOps, Aliases: []string{"continuous integration"}},
	{Canonical: "CD", Category: types.CategoryDevOps, Aliases: []string{"continuous delivery", "continuous deployment"}},
	{Canonical: "Git", Category: types.CategoryDevOps},
	{Canonical: "GitHub Actions", Category: types.CategoryDevOps},
	{Canonical: "GitLab", Category: types.CategoryDevOps},
	{Canonical: "Helm", Category: types.CategoryDevOps},
	{Canonical: "Prometheus", Category: types.CategoryDevOps},
	{Canonical: "Grafana", Category: types.CategoryDevOps},

	// Testing
	{Canonical: "Selenium", Category: types.CategoryTesting},
	{Canonical: "Playwright", Category: types.CategoryTesting},
	{Canonical: "Cypress", Category: types.CategoryTesting},
	{Canonical: "Appium", Category: types.CategoryTesting},
	{Canonical: "JUnit", Category: types.CategoryTesting},
	{Canonical: "pytest", Category: types.CategoryTesting},
	{Canonical: "Jest", Category: types.CategoryTesting},
	{Canonical: "JMeter", Category: types.CategoryTesting},
	{Canonical: "Postman", Category: types.CategoryTesting},
	{Canonical: "k6", Category: types.CategoryTesting},
	{Canonical: "Cucumber", Category: types.CategoryTesting, Aliases: []string{"gherkin"}},
	{Canonical: "TDD", Category: types.CategoryTesting, Aliases: []string{"test driven development", "test-driven development"}},
	{Canonical: "BDD", Category: types.CategoryTesting, Aliases: []string{"behaviour driven development", "behavior driven development"}},

	// Platforms
	{Canonical: "Linux", Category: types.CategoryPlatform, Aliases: []string{"unix"}},
	{Canonical: "Windows", Category: types.CategoryPlatform},
	{Canonical: "iOS", Category: types.CategoryPlatform},
	{Canonical: "Android", Category: types.CategoryPlatform},
	{Canonical: "Flutter", Category: types.CategoryPlatform},
	{Canonical: "React Native", Category: types.CategoryPlatform},
	{Canonical: "Salesforce", Category: types.CategoryPlatform},
	{Canonical: "SharePoint", Category: types.CategoryPlatform},

	// Data
	{Canonical: "PostgreSQL", Category: types.CategoryData, Aliases: []string{"postgres"}},
	{Canonical: "MySQL", Category: types.CategoryData},
	{Canonical: "MongoDB", Category: types.CategoryData, Aliases: []string{"mongo"}},
	{Canonical: "Redis", Category: types.CategoryData},
	{Canonical: "Elasticsearch", Category: types.CategoryData, Aliases: []string{"elastic search"}},
	{Canonical: "Kafka", Category: types.CategoryData, Aliases: []string{"apache kafka"}},
	{Canonical: "Spark", Category: types.CategoryData, Aliases: []string{"apache spark"}},
	{Canonical: "Snowflake", Category: types.CategoryData},
	{Canonical: "Power BI", Category: types.CategoryData, Aliases: []string{"powerbi"}},
	{Canonical: "Tableau", Category: types.CategoryData},
	{Canonical: "ETL", Category: types.CategoryData},
	{Canonical: "Machine Learning", Category: types.CategoryData, Aliases: []string{"ml"}},
	{Canonical: "TensorFlow", Category: types.CategoryData},
	{Canonical: "PyTorch", Category: types.CategoryData},

	// Other
	{Canonical: "Agile", Category: types.CategoryOther, Aliases: []string{"scrum", "kanban"}},
	{Canonical: "Jira", Category: types.CategoryOther},
	{Canonical: "Confluence", Category: types.CategoryOther},
	{Canonical: "Microservices", Category: types.CategoryOther, Aliases: []string{"micro-services", "micro services"}},
}

var (
	defaultDict     *Dictionary
	defaultDictOnce sync.Once
)

// Default returns the built-in skill dictionary. The dictionary is validated
// on first use; a malformed built-in table is a programming error and panics.
func Default() *Dictionary {
	defaultDictOnce.Do(func() {
		defaultDict = MustNew(defaultEntries)
	})
	return defaultDict
}
