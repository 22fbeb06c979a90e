package taxonomy

import "strings"

// HardSkills is the competency-domain vocabulary (what the candidate
// knows how to do). Technologies and software belong in Tools instead.
var HardSkills = map[string]struct{}{}

// SoftSkills is the behavioral-skill vocabulary.
var SoftSkills = map[string]struct{}{}

// Tools is the vocabulary of concrete languages, frameworks, platforms
// and software (what the candidate uses).
var Tools = map[string]struct{}{}

// HardSkillTerms enumerates the hard-skill vocabulary (FR + EN
// spellings) in scan order.
var HardSkillTerms = []string{
	// Data & AI
	"machine learning", "deep learning",
	"computer vision", "vision par ordinateur",
	"nlp", "natural language processing",
	"traitement du langage naturel", "traitement automatique du langage",
	"text mining", "sentiment analysis", "analyse de sentiment",
	"data science", "data engineering",
	"data analysis", "analyse de données", "analyse des données",
	"data preprocessing", "préparation des données", "préparation de données",
	"feature engineering",
	"statistical analysis", "analyse statistique", "statistiques",
	"predictive modeling", "modélisation prédictive",
	"model training", "entraînement de modèles",
	"model optimization", "optimisation de modèles",
	"model evaluation", "évaluation de modèles",
	"data visualization", "visualisation de données", "visualisation des données",
	"business intelligence",
	"etl", "data pipeline", "pipeline de données",
	"data warehouse", "data warehousing",
	"big data", "data lake",
	"recommender system", "système de recommandation",
	"time series", "série temporelle", "prévision",
	"generative ai", "ia générative", "llm", "large language model",
	"prompt engineering",
	"rag", "retrieval augmented generation",
	// Software development
	"backend development", "développement backend",
	"frontend development", "développement frontend",
	"full-stack development", "full stack", "full-stack",
	"web development", "développement web",
	"mobile development", "développement mobile",
	"api design", "conception d'api", "conception api",
	"rest api", "api rest", "restful api",
	"graphql", "grpc", "websocket", "soap",
	"microservices", "architecture microservices",
	"software architecture", "architecture logicielle",
	"system design", "conception de système",
	"database design", "conception de base de données", "modélisation de données",
	"object-oriented programming", "programmation orientée objet", "oop",
	"functional programming", "programmation fonctionnelle",
	"design patterns", "clean code", "solid principles",
	"unit testing", "tests unitaires",
	"integration testing", "tests d'intégration",
	"test-driven development", "tdd",
	"web scraping", "automatisation",
	// DevOps / infra / cloud
	"devops", "devsecops", "sre",
	"ci/cd", "intégration continue", "continuous integration",
	"continuous deployment", "continuous delivery",
	"cloud computing", "cloud architecture", "architecture cloud",
	"cloud deployment", "déploiement cloud",
	"containerization", "conteneurisation",
	"infrastructure as code",
	"monitoring", "observabilité",
	// Security
	"cybersecurity", "cybersécurité", "sécurité informatique",
	"penetration testing", "test d'intrusion",
	"secure coding", "codage sécurisé",
	// Methods & management
	"agile", "scrum", "kanban",
	"project management", "gestion de projet",
	"technical leadership", "lead technique",
	"code review", "revue de code",
	"business analysis", "analyse métier",
	"reporting",
	// Business domains
	"finance", "comptabilité", "accounting",
	"marketing digital", "seo", "e-commerce",
	"embedded systems", "systèmes embarqués",
	"iot", "internet of things",
	"blockchain", "web3", "smart contracts",
	"game development", "développement de jeux",
	"erp", "crm",
	"network administration", "administration réseau",
	"linux administration", "administration système",
}

// SoftSkillTerms enumerates the soft-skill vocabulary (FR + EN spellings).
var SoftSkillTerms = []string{
	"communication", "leadership", "teamwork", "problem solving",
	"problem-solving", "critical thinking", "adaptability", "adaptabilité",
	"time management", "gestion du temps", "creativity", "créativité",
	"collaboration", "decision making", "prise de décision",
	"conflict resolution", "gestion des conflits",
	"emotional intelligence", "intelligence émotionnelle",
	"negotiation", "négociation", "presentation", "présentation",
	"mentoring", "coaching", "empathy", "empathie",
	"flexibility", "flexibilité", "initiative",
	"attention to detail", "souci du détail",
	"work ethic", "éthique de travail",
	"stress management", "gestion du stress",
	"analytical thinking", "pensée analytique",
	"organization", "organisation",
	"autonomy", "autonomie",
	"curiosity", "curiosité",
	"proactivity", "proactivité",
	"motivation", "perseverance", "persévérance",
	"interpersonal skills", "compétences interpersonnelles",
	"public speaking", "prise de parole en public",
}

// ToolTerms enumerates the tool/technology vocabulary.
var ToolTerms = []string{
	// Programming languages
	"python", "java", "javascript", "typescript", "c", "c++", "c#",
	"go", "rust", "ruby", "php", "swift", "kotlin", "scala",
	"r", "matlab", "bash", "powershell", "sql", "nosql",
	// Databases
	"mongodb", "postgresql", "mysql", "oracle", "sqlite",
	"redis", "elasticsearch", "neo4j", "cassandra", "snowflake",
	"mariadb", "dynamodb", "firebase",
	// Frontend
	"react", "angular", "vue", "vue.js", "next.js", "nuxt.js", "svelte",
	"html", "css", "sass", "tailwind", "bootstrap", "jquery",
	// Backend frameworks
	"node.js", "express", "fastapi", "django", "flask",
	"spring", "spring boot", "laravel", "asp.net", ".net",
	"rails", "symfony", "nestjs", "strapi",
	// DevOps / containers
	"docker", "kubernetes", "k8s", "terraform", "ansible",
	"jenkins", "gitlab ci", "github actions", "helm", "vagrant", "nginx",
	// Version control
	"git", "github", "gitlab", "bitbucket", "svn",
	// Cloud
	"aws", "azure", "gcp", "google cloud", "heroku", "vercel",
	"netlify", "digitalocean", "render", "railway",
	// Operating systems
	"linux", "ubuntu", "centos", "windows server",
	// Data / ML libraries & platforms
	"tensorflow", "pytorch", "keras", "scikit-learn", "scikit learn",
	"pandas", "numpy", "scipy", "matplotlib", "seaborn", "plotly",
	"xgboost", "lightgbm", "hugging face", "transformers",
	"langchain", "openai", "gemini", "mistral", "ollama",
	"spark", "pyspark", "hadoop", "hive",
	"airflow", "apache airflow", "prefect", "luigi",
	"kafka", "apache kafka", "rabbitmq",
	"mlflow", "wandb", "dvc",
	// BI / visualization
	"power bi", "tableau", "grafana", "kibana", "metabase",
	"looker", "google analytics",
	// IDEs / editors
	"vs code", "vscode", "intellij", "pycharm", "eclipse",
	"jupyter", "google colab",
	// Project management
	"jira", "trello", "confluence", "notion", "asana", "monday",
	// Design / UI-UX
	"figma", "adobe xd", "photoshop", "illustrator", "canva",
	// API / testing
	"postman", "insomnia", "swagger", "openapi",
	"selenium", "cypress", "jest", "pytest", "junit",
	// Monitoring / logs
	"prometheus", "datadog", "sentry", "sonarqube",
	"logstash", "splunk",
	// Security
	"oauth", "jwt", "ssl", "tls",
	// Build / packaging
	"gradle", "maven", "npm", "yarn", "pip", "conda", "poetry",
	// Office
	"excel", "word", "powerpoint", "google sheets",
	"microsoft teams", "slack",
	// ERP / CRM
	"sap", "odoo", "salesforce", "hubspot",
	// Blockchain
	"solidity",
	// Other
	"wordpress", "unity", "unreal engine",
}

// Aliases maps lowercased variant spellings to one canonical display
// name so that synonyms merge into a single skill/tool record.
var Aliases = map[string]string{
	// Languages
	"js": "JavaScript", "ts": "TypeScript",
	"py": "Python", "cpp": "C++", "csharp": "C#",
	// Databases
	"postgres": "PostgreSQL", "mongo": "MongoDB",
	"elastic": "Elasticsearch",
	// Frameworks / tools
	"k8s": "Kubernetes", "tf": "Terraform",
	"react.js": "React", "reactjs": "React",
	"angularjs": "Angular", "vuejs": "Vue.js",
	"nextjs": "Next.js", "expressjs": "Express",
	"node": "Node.js", "nodejs": "Node.js",
	"sklearn": "scikit-learn", "sk-learn": "scikit-learn",
	"hf": "Hugging Face", "gpt": "OpenAI",
	"langchain": "LangChain",
	// Cloud
	"gcp": "GCP", "google cloud platform": "GCP",
	// Soft skills
	"problem-solving": "Problem solving",
	"problem solving": "Problem solving",
	// FR -> EN canonicalization
	"analyse de données":            "Data Analysis",
	"analyse des données":           "Data Analysis",
	"visualisation de données":      "Data Visualization",
	"visualisation des données":     "Data Visualization",
	"préparation des données":       "Data Preprocessing",
	"ia générative":                 "Generative AI",
	"traitement du langage naturel": "NLP",
	"traitement automatique du langage": "NLP",
	"vision par ordinateur":         "Computer Vision",
	"modélisation prédictive":       "Predictive Modeling",
	"développement backend":         "Backend Development",
	"développement frontend":        "Frontend Development",
	"développement web":             "Web Development",
	"développement mobile":          "Mobile Development",
	"architecture logicielle":       "Software Architecture",
	"conception api":                "API Design",
	"conception d'api":              "API Design",
	"gestion de projet":             "Project Management",
	"intégration continue":          "CI/CD",
	"conteneurisation":              "Containerization",
	"déploiement cloud":             "Cloud Deployment",
	"architecture cloud":            "Cloud Architecture",
	"sécurité informatique":         "Cybersecurity",
}

func init() {
	for _, t := range HardSkillTerms {
		HardSkills[t] = struct{}{}
	}
	for _, t := range SoftSkillTerms {
		SoftSkills[t] = struct{}{}
	}
	for _, t := range ToolTerms {
		Tools[t] = struct{}{}
	}
}

// Canonical returns the canonical display name for a matched term,
// falling back to the trimmed term itself when no alias applies.
func Canonical(term string) string {
	if canonical, ok := Aliases[strings.ToLower(strings.TrimSpace(term))]; ok {
		return canonical
	}
	return strings.TrimSpace(term)
}

// IsHardSkill reports whether the term belongs to the hard-skill
// vocabulary. Tools overlapping this set are attributed to skills only.
func IsHardSkill(term string) bool {
	_, ok := HardSkills[strings.ToLower(term)]
	return ok
}
