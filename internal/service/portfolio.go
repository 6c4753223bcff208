package service

import "github.com/Abhinay9346/portfolio/internal/model"

type PortfolioService struct {
	portfolio model.Portfolio
}

func NewPortfolioService() *PortfolioService {
	return &PortfolioService{portfolio: defaultPortfolio()}
}

func (s *PortfolioService) Portfolio() model.Portfolio {
	return s.portfolio
}

func defaultPortfolio() model.Portfolio {
	return model.Portfolio{
		Owner: model.Owner{
			FirstName: "Nagireddi",
			LastName:  "Abhinay",
			Initials:  "NA",
			Role:      "Full Stack Developer (MERN Stack)",
			Pitch: "Building scalable, secure web applications using the MERN stack. " +
				"Passionate about clean code, RESTful architecture, and delivering real-world solutions.",
			Bio: "Full Stack Developer and IT undergraduate with hands-on experience in building secure, " +
				"scalable MERN stack applications. Strong in RESTful APIs, JWT authentication, database design, " +
				"and SDLC. Experienced in real-world projects and published research work.",
			Email: "abhinay891984@gmail.com",
			Links: []model.SocialLink{
				{Label: "GitHub", Href: "https://github.com/Abhinay9346", Text: "github.com/Abhinay9346"},
				{Label: "LinkedIn", Href: "https://linkedin.com/in/nagireddi8919", Text: "linkedin.com/in/nagireddi8919"},
			},
		},
		Nav: []model.NavLink{
			{Label: "About", Href: "#about"},
			{Label: "Skills", Href: "#skills"},
			{Label: "Projects", Href: "#projects"},
			{Label: "Publications", Href: "#publications"},
			{Label: "Certifications", Href: "#certifications"},
			{Label: "Blog", Href: "/blog"},
			{Label: "Education", Href: "#education"},
			{Label: "Contact", Href: "#contact"},
		},
		Focus: []model.FocusArea{
			{Title: "Frontend", Summary: "React.js, responsive UI, modern CSS"},
			{Title: "Backend", Summary: "Node.js, Express, REST APIs, JWT"},
			{Title: "Database", Summary: "MongoDB, schema design, optimization"},
		},
		Skills: []model.SkillGroup{
			{Title: "Frontend", Skills: []string{"HTML5", "CSS3", "React.js", "Bootstrap"}},
			{Title: "Backend", Skills: []string{"Node.js", "Express.js", "REST APIs", "JWT"}},
			{Title: "Database", Skills: []string{"MongoDB"}},
			{Title: "Programming", Skills: []string{"JavaScript", "Java", "Python"}},
			{Title: "Tools & Cloud", Skills: []string{"Git", "GitHub", "Postman", "AWS (EC2, S3, API Gateway)"}},
			{Title: "Concepts", Skills: []string{"SDLC", "MVC Architecture", "OOP", "DSA"}},
		},
		Projects: []model.Project{
			{
				Title:    "Certificate Automation & Verification System",
				Featured: true,
				Status:   model.ProjectCompleted,
				Description: "Secure bulk digital certificate generation and verification platform with " +
					"QR-code based verification and role-based access control.",
				Highlights: []string{
					"PDF generation using templates",
					"QR-code based certificate verification",
					"RESTful APIs and role-based access control",
					"Reduced manual effort by 90%",
					"Supports 1000+ certificates per batch",
				},
				Tech: []string{"React.js", "Node.js", "Express.js", "MongoDB", "JWT"},
			},
			{
				Title:    "Online Bus Ticket Booking System",
				Featured: false,
				Status:   model.ProjectOngoing,
				Description: "Full-featured MERN stack bus booking application with real-time search, " +
					"seat booking, and admin dashboard.",
				Highlights: []string{
					"Real-time bus search and seat booking",
					"JWT-based authentication",
					"Role-based admin and user access",
					"Prevents double booking",
					"Optimized MongoDB schema",
				},
				Tech: []string{"React.js", "Node.js", "Express.js", "MongoDB", "REST API"},
			},
		},
		Publications: []model.Publication{
			{
				Kind:  "Research Paper",
				Venue: "Published on Zenodo · Submitted to IEEE",
				Title: "Digital Certificate Automation System with Secure Multi-Level Approval Workflow",
				Abstract: "This paper presents a comprehensive system for automating digital certificate " +
					"generation and management using a secure multi-level approval workflow. The system " +
					"leverages modern web technologies and cryptographic methods to ensure the integrity " +
					"and authenticity of issued certificates.",
				URL: "https://zenodo.org/records/18612998",
			},
		},
		Certifications: []model.Certification{
			{Name: "AWS Cloud Practitioner", Issuer: "Amazon Skill Builder"},
			{Name: "Amazon API Gateway for Serverless Applications", Issuer: "Amazon Web Services"},
			{Name: "Google Analytics Certification", Issuer: "Google"},
			{Name: "Google Ads Certification", Issuer: "Coursera"},
			{Name: "Python Essentials", Issuer: "Cisco"},
			{Name: "Full Stack Development", Issuer: "Udemy"},
		},
		Education: []model.Education{
			{
				Degree:      "B.Tech in Information Technology",
				Institution: "Vignan's LARA Institute of Technology & Science",
				Score:       "CGPA: 8.3",
				Period:      "Current",
			},
			{
				Degree:      "Diploma in Computer Engineering",
				Institution: "Kakinada Institute of Engineering and Technology",
				Score:       "71%",
				Period:      "Completed",
			},
			{
				Degree:      "SSC (Secondary School Certificate)",
				Institution: "Little Angels High School",
				Score:       "GPA: 10",
				Period:      "Completed",
			},
		},
	}
}
