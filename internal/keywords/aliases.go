package keywords

// aliases maps common variants to canonical keyword forms. The tables in
// this file are immutable configuration data; nothing mutates them at
// runtime.
var aliases = map[string]string{
	"node.js":     "node",
	"nodejs":      "node",
	"react.js":    "react",
	"reactjs":     "react",
	"postgresql":  "postgres",
	"postgre":     "postgres",
	"k8s":         "kubernetes",
	"ci/cd":       "ci-cd",
	"c plus plus": "c++",
	"c sharp":     "c#",
	".net":        "dotnet",
	"rest api":    "rest",
	"js":          "javascript",
	"ts":          "typescript",
}

// techTerms is the allow-list of technical tokens worth surfacing.
var techTerms = map[string]struct{}{
	"python": {}, "javascript": {}, "typescript": {}, "react": {}, "node": {},
	"express": {}, "fastapi": {}, "django": {}, "flask": {},
	"aws": {}, "gcp": {}, "azure": {}, "docker": {}, "kubernetes": {}, "k8s": {},
	"terraform": {}, "ansible": {}, "ci-cd": {},
	"sql": {}, "postgres": {}, "mysql": {}, "mongodb": {}, "redis": {},
	"graphql": {}, "rest": {},
	"java": {}, "spring": {}, "kotlin": {}, "go": {}, "golang": {}, "rust": {},
	"php": {}, "ruby": {}, "dotnet": {}, "c": {}, "c++": {}, "c#": {},
	"pandas": {}, "numpy": {}, "pytorch": {}, "tensorflow": {},
	"scikit-learn": {}, "sklearn": {}, "spark": {}, "airflow": {}, "dbt": {},
	"excel": {}, "tableau": {}, "backend": {}, "frontend": {}, "full-stack": {},
}

// slashExceptions are slash-bearing tokens kept even though slashes are
// otherwise too permissive a signal.
var slashExceptions = map[string]struct{}{
	"ci/cd":       {},
	"rest/api":    {},
	"graphql/api": {},
}

// phrases are multi-word terms kept intact when present in the text.
var phrases = []string{
	"machine learning",
	"data science",
	"data engineering",
	"computer vision",
	"rest api",
	"continuous integration",
	"continuous delivery",
	"continuous deployment",
	"full stack",
}
