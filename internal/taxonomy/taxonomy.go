package taxonomy

// Domain is one of the four official CLF-C02 knowledge domains, with the
// weight (percent of the exam) AWS publishes for it and the keywords used to
// classify question text.
type Domain struct {
	Name     string   `yaml:"name" json:"name"`
	Weight   float64  `yaml:"weight" json:"weight"`
	Keywords []string `yaml:"keywords" json:"keywords"`
}

// Taxonomy bundles the domain tables and the canonical service catalog. It is
// configuration, injected at construction time, so alternate tables can be
// substituted in tests or via config.yaml.
type Taxonomy struct {
	Domains  []Domain `yaml:"domains" json:"domains"`
	Services []string `yaml:"services" json:"services"`
}

// Default returns the built-in CLF-C02 tables. Domain order is significant:
// keyword-score ties resolve to the first domain in this slice.
func Default() Taxonomy {
	return Taxonomy{
		Domains: []Domain{
			{
				Name:   "Domain 1: Cloud Concepts",
				Weight: 24,
				Keywords: []string{
					"beneficios", "cloud", "escalabilidad", "elasticidad", "agilidad",
					"alta disponibilidad", "tolerancia a fallos", "economía", "migración",
				},
			},
			{
				Name:   "Domain 2: Security and Compliance",
				Weight: 30,
				Keywords: []string{
					"seguridad", "IAM", "Shield", "WAF", "GuardDuty", "Inspector",
					"responsabilidad compartida", "cifrado", "compliance", "políticas",
				},
			},
			{
				Name:   "Domain 3: Cloud Technology and Services",
				Weight: 34,
				Keywords: []string{
					"EC2", "S3", "Lambda", "RDS", "DynamoDB", "ECS", "EKS", "VPC",
					"CloudFront", "Route 53", "contenedor", "almacenamiento", "base de datos",
				},
			},
			{
				Name:   "Domain 4: Billing, Pricing, and Support",
				Weight: 12,
				Keywords: []string{
					"facturación", "precio", "costo", "soporte", "Trusted Advisor",
					"AWS Support", "Cost Explorer", "presupuesto", "TCO", "ROI", "CAF",
				},
			},
		},
		Services: []string{
			// Security
			"AWS Shield", "Amazon GuardDuty", "AWS WAF", "Amazon Inspector", "AWS IAM",
			"AWS KMS", "AWS Secrets Manager", "AWS Certificate Manager",
			// Compute
			"Amazon EC2", "AWS Lambda", "AWS Elastic Beanstalk", "AWS Fargate",
			// Containers
			"Amazon ECS", "Amazon EKS", "Amazon ECR",
			// Storage
			"Amazon S3", "Amazon EBS", "Amazon EFS", "AWS Storage Gateway",
			"AWS Snowball", "AWS DataSync",
			// Database
			"Amazon RDS", "Amazon DynamoDB", "Amazon Aurora", "Amazon Redshift",
			"Amazon ElastiCache", "Amazon Neptune",
			// Networking
			"Amazon VPC", "Amazon CloudFront", "Amazon Route 53", "AWS Direct Connect",
			"Elastic Load Balancing", "AWS VPN",
			// AI/ML
			"Amazon Rekognition", "Amazon Textract", "Amazon Comprehend",
			"Amazon Transcribe", "Amazon Polly", "Amazon Translate", "Amazon SageMaker",
			// Analytics
			"Amazon Athena", "AWS Glue", "Amazon QuickSight", "Amazon Kinesis",
			// Management
			"AWS CloudFormation", "AWS CloudTrail", "Amazon CloudWatch",
			"AWS Config", "AWS Systems Manager", "AWS Trusted Advisor",
			// Support & Billing
			"AWS Cost Explorer", "AWS Budgets", "AWS Organizations",
		},
	}
}
