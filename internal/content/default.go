package content

import "github.com/nfrund/portfolio/internal/domain"

// Default returns the built-in portfolio content. Each call returns a fresh
// value so callers can never share mutable slices.
func Default() *domain.Profile {
	return &domain.Profile{
		Site: domain.Site{
			Title:       "Portfolio",
			Description: "My professional portfolio showcasing my skills and projects",
			Credit:      "Built with Go, gomponents and htmx",
		},
		Owner: domain.Owner{
			Greeting: "Hello I'm",
			Name:     "Marouane ES-SAID",
			Role:     "Cyber Security Expert",
			Bio: "MSc Cybersecurity student at University of Wollongong Dubai, specializing in threat hunting, " +
				"penetration testing, and post-quantum cryptography. Experienced in secure software engineering, " +
				"SIEM operations, and vulnerability assessment with proven results in enterprise security.",
			CallToAction: "Get Started",
		},
		Achievements: []domain.Achievement{
			{Value: "35+", Label: "Vulnerabilities Identified", Icon: domain.IconBug},
			{Value: "40%", Label: "Attack Surface Reduction", Icon: domain.IconShieldCheck},
			{Value: "100%", Label: "Test Coverage", Icon: domain.IconLockClosed},
		},
		Services: []domain.Service{
			{Name: "Threat Hunting", Icon: domain.IconShield},
			{Name: "Network Security", Icon: domain.IconNetwork},
			{Name: "Web Security", Icon: domain.IconGlobe},
			{Name: "Database Security", Icon: domain.IconDatabase},
		},
		Highlights: []domain.Stat{
			{Value: "35+", Label: "Vulnerabilities Found"},
			{Value: "40%", Label: "Attack Reduction"},
		},
		Skills: []domain.Skill{
			{
				Icon:        domain.IconShield,
				Title:       "Threat Hunting & SIEM",
				Description: "Expert in ELK Stack, Wazuh, MITRE ATT&CK framework, and real-time security monitoring. Designed SOC-style multi-cloud security environments.",
				Level:       domain.LevelExpert,
			},
			{
				Icon:        domain.IconLock,
				Title:       "Penetration Testing",
				Description: "Certified Ethical Hacker (CEH) with experience in vulnerability assessment, OWASP/NIST frameworks, and reducing attack surfaces by 40%.",
				Level:       domain.LevelExpert,
			},
			{
				Icon:        domain.IconCloud,
				Title:       "Cloud Security",
				Description: "Multi-cloud security expertise (AWS + Azure), automated detection rules, and adversary simulation. Google Cloud DevOps certified.",
				Level:       domain.LevelAdvanced,
			},
			{
				Icon:        domain.IconNetwork,
				Title:       "Secure Software Engineering",
				Description: "Applied NIST/OWASP standards in banking environments. Expertise in API security, authentication, and secure transaction processing.",
				Level:       domain.LevelExpert,
			},
		},
		Education: []domain.Education{
			{
				Degree:      "Master of Science in Cybersecurity",
				Institution: "University of Wollongong, Dubai, UAE",
				Description: "Currently pursuing a Master's degree in Cybersecurity, specializing in threat hunting, penetration testing, and post-quantum cryptography.",
			},
			{
				Degree:      "Bachelor of Science in Computer Science",
				Institution: "Al Akhawayn University, Ifrane, Morocco",
				Description: "Completed Bachelor's degree in Computer Science with a strong foundation in software engineering, algorithms, and system design.",
				NoteLabel:   "Exchange Semester:",
				Note:        "Monroe University, New York, USA",
			},
		},
		Projects: []domain.Project{
			{
				Title:        "Post-Quantum Secure Chat",
				Description:  "Web-based messaging prototype demonstrating post-quantum cryptography with Kyber512 key encapsulation and Dilithium2 signatures. Features FastAPI backend, React frontend, and AES-GCM encryption.",
				Technologies: []string{"Python", "FastAPI", "React", "Post-Quantum Crypto", "Kyber512", "Dilithium2"},
				ImageURL:     "https://images.unsplash.com/photo-1617839625591-e5a789593135?q=80&w=880&auto=format&fit=crop",
				GithubURL:    "https://github.com/Marouane7709/post-quantum-secure-chat",
			},
			{
				Title:        "Cloud Security & Threat Hunting Lab",
				Description:  "Designed a SOC-style multi-cloud security monitoring environment (AWS + Azure) using ELK Stack and Wazuh. Developed MITRE ATT&CK-aligned detection rules and automated real-time security alerts.",
				Technologies: []string{"AWS", "Azure", "ELK Stack", "Wazuh", "MITRE ATT&CK", "SIEM"},
				ImageURL:     "https://plus.unsplash.com/premium_photo-1683836722608-60ab4d1b58e5?q=80&w=1112&auto=format&fit=crop",
			},
			{
				Title:        "Ethical Hacking & Penetration Testing",
				Description:  "Performed structured vulnerability assessments and penetration testing on enterprise systems. Identified 35+ vulnerabilities mapped to OWASP and NIST frameworks, reducing attack surface by 40%.",
				Technologies: []string{"Penetration Testing", "OWASP", "NIST", "Vulnerability Assessment", "CEH"},
				ImageURL:     "https://images.unsplash.com/photo-1510915228340-29c85a43dcfe?q=80&w=1170&auto=format&fit=crop",
			},
			{
				Title:        "TryHackMe Security Labs",
				Description:  "Completed numerous hands-on cybersecurity labs covering penetration testing, network security, web application security, and cryptography. Practical experience with real-world attack scenarios and defense mechanisms.",
				Technologies: []string{"TryHackMe", "Penetration Testing", "Network Security", "Web Security", "Cryptography"},
				ImageURL:     "https://s3-eu-west-1.amazonaws.com/tpd/logos/5f00b0f031ec4d0001f1344e/0x0.png",
			},
			{
				Title:        "Secure Banking API Optimization",
				Description:  "Optimized secure banking transactions at Crédit du Maroc by improving fund authorization, balance updates, and API performance. Applied NIST/OWASP standards for secure API validation and access controls.",
				Technologies: []string{"Java", "Spring Boot", "API Security", "NIST", "OWASP", "Banking Systems"},
				ImageURL:     "https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=800&h=600&fit=crop&q=80",
			},
			{
				Title:        "AI Checkers Game",
				Description:  "Developed an intelligent checkers game featuring multiple AI algorithms (Minimax, Alpha-Beta Pruning) with performance analytics and an interactive GUI using Python and Turtle graphics.",
				Technologies: []string{"Python", "AI Algorithms", "Turtle Graphics", "Game Development"},
				ImageURL:     "/static/images/checkers.svg",
			},
			{
				Title:        "CubeSat Budget Analyzer",
				Description:  "Professional-grade desktop application for analyzing CubeSat mission budgets, featuring comprehensive link and data budget analysis with an intuitive Qt-based GUI.",
				Technologies: []string{"Python", "PyQt6", "Satellite Communications", "Data Analysis"},
				ImageURL:     "https://images.unsplash.com/photo-1708738793054-32b71e3fc822?q=80&w=1440&auto=format&fit=crop",
			},
			{
				Title:        "E-commerce Platform Testing",
				Description:  "Developed and implemented automated test scripts using Selenium to evaluate functionality, performance, and security.",
				Technologies: []string{"Selenium", "Java", "Automated Testing"},
				ImageURL:     "https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=800&h=600&fit=crop&q=80",
			},
			{
				Title:        "Delivery App",
				Description:  "Developed a mobile app for food ordering using modern web technologies with a focus on user experience.",
				Technologies: []string{"JavaScript", "Node.js", "React"},
				ImageURL:     "https://images.unsplash.com/photo-1556742049-0cfed4f6a45d?w=800&h=600&fit=crop&q=80",
			},
		},
		Contacts: []domain.ContactLink{
			{Kind: domain.IconGitHub, Label: "GitHub", URL: "https://github.com/Marouane7709/"},
			{Kind: domain.IconLinkedIn, Label: "LinkedIn", URL: "https://linkedin.com/in/marouane-es-said-31765a270"},
			{Kind: domain.IconEnvelope, Label: "Email", URL: "mailto:Marouaneessaid09@gmail.com"},
		},
	}
}
