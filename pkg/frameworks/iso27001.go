package frameworks

import "github.com/complymap/complymap/pkg/model"

// ISO27001 returns the ISO 27001 (2022) framework definition: the
// Annex A control domains and a representative control subset.
func ISO27001() *model.Framework {
	fw := model.NewFramework(
		"iso27001",
		"ISO 27001",
		"2022",
		"Information Security Management System - Requirements for establishing, implementing, maintaining and continually improving an information security management system",
	)

	for _, d := range []*model.Domain{
		model.NewDomain("A.5", "Information Security Policies",
			"Organizational information security", "iso27001"),
		model.NewDomain("A.6", "Organization of Information Security",
			"Internal organization and mobile devices", "iso27001"),
		model.NewDomain("A.7", "Human Resource Security",
			"Personnel security controls", "iso27001"),
		model.NewDomain("A.8", "Asset Management",
			"Asset responsibility and information classification", "iso27001"),
		model.NewDomain("A.9", "Access Control",
			"Business requirements for access control", "iso27001"),
		model.NewDomain("A.10", "Cryptography",
			"Cryptographic controls", "iso27001"),
		model.NewDomain("A.11", "Physical and Environmental Security",
			"Secure areas and equipment protection", "iso27001"),
		model.NewDomain("A.12", "Operations Security",
			"Operational procedures and responsibilities", "iso27001"),
	} {
		fw.AddDomain(d)
	}

	for _, c := range []*model.Control{
		{
			ID:          "A.5.1.1",
			Title:       "Information Security Policy",
			Description: "An information security policy shall be defined, approved by management, published and communicated to employees and relevant external parties",
			FrameworkID: "iso27001",
			DomainID:    "A.5",
			RiskLevel:   model.RiskCritical,
			ControlType: model.TypeProcedural,
			Tags:        []string{"iso27001", "isms", "information-security", "policy"},
		},
		{
			ID:          "A.5.1.2",
			Title:       "Review of Information Security Policy",
			Description: "The information security policy shall be reviewed at planned intervals or if significant changes occur",
			FrameworkID: "iso27001",
			DomainID:    "A.5",
			RiskLevel:   model.RiskHigh,
			ControlType: model.TypeProcedural,
			Tags:        []string{"iso27001", "isms", "information-security", "policy"},
		},
		{
			ID:          "A.6.1.1",
			Title:       "Information Security Roles and Responsibilities",
			Description: "All information security responsibilities shall be defined and allocated",
			FrameworkID: "iso27001",
			DomainID:    "A.6",
			RiskLevel:   model.RiskHigh,
			ControlType: model.TypeProcedural,
			Tags:        []string{"iso27001", "isms", "information-security", "roles"},
		},
		{
			ID:          "A.6.2.1",
			Title:       "Mobile Device Policy",
			Description: "A policy and supporting security measures shall be adopted to manage the risks introduced by using mobile devices",
			FrameworkID: "iso27001",
			DomainID:    "A.6",
			RiskLevel:   model.RiskMedium,
			ControlType: model.TypeProcedural,
			Tags:        []string{"iso27001", "isms", "information-security", "mobile"},
		},
		{
			ID:          "A.7.1.1",
			Title:       "Screening",
			Description: "Background verification checks on all candidates for employment shall be carried out in accordance with relevant laws, regulations and ethics",
			FrameworkID: "iso27001",
			DomainID:    "A.7",
			RiskLevel:   model.RiskMedium,
			ControlType: model.TypeProcedural,
			Tags:        []string{"iso27001", "isms", "information-security", "hr"},
		},
		{
			ID:          "A.7.2.2",
			Title:       "Information Security Awareness, Education and Training",
			Description: "All employees of the organization and, where relevant, contractors shall receive appropriate awareness education and training",
			FrameworkID: "iso27001",
			DomainID:    "A.7",
			RiskLevel:   model.RiskMedium,
			ControlType: model.TypeProcedural,
			Tags:        []string{"iso27001", "isms", "information-security", "training"},
		},
		{
			ID:          "A.8.1.1",
			Title:       "Inventory of Assets",
			Description: "Assets associated with information and information processing facilities shall be identified",
			FrameworkID: "iso27001",
			DomainID:    "A.8",
			RiskLevel:   model.RiskHigh,
			ControlType: model.TypeProcedural,
			Tags:        []string{"iso27001", "isms", "information-security", "assets"},
		},
		{
			ID:          "A.8.2.1",
			Title:       "Classification of Information",
			Description: "Information shall be classified in terms of legal requirements, value, criticality and sensitivity",
			FrameworkID: "iso27001",
			DomainID:    "A.8",
			RiskLevel:   model.RiskHigh,
			ControlType: model.TypeProcedural,
			Tags:        []string{"iso27001", "isms", "information-security", "classification"},
		},
		{
			ID:          "A.9.1.1",
			Title:       "Access Control Policy",
			Description: "An access control policy shall be established, documented and reviewed based on business and information security requirements",
			FrameworkID: "iso27001",
			DomainID:    "A.9",
			RiskLevel:   model.RiskCritical,
			ControlType: model.TypeProcedural,
			Tags:        []string{"iso27001", "isms", "information-security", "access-control"},
		},
		{
			ID:          "A.9.2.1",
			Title:       "User Registration and De-registration",
			Description: "A formal user registration and de-registration process shall be implemented to enable assignment of access rights",
			FrameworkID: "iso27001",
			DomainID:    "A.9",
			RiskLevel:   model.RiskCritical,
			ControlType: model.TypeTechnical,
			Tags:        []string{"iso27001", "isms", "information-security", "access-control"},
		},
		{
			ID:          "A.10.1.1",
			Title:       "Policy on the Use of Cryptographic Controls",
			Description: "A policy on the use of cryptographic controls for protection of information shall be developed and implemented",
			FrameworkID: "iso27001",
			DomainID:    "A.10",
			RiskLevel:   model.RiskHigh,
			ControlType: model.TypeTechnical,
			Tags:        []string{"iso27001", "isms", "information-security", "cryptography"},
		},
		{
			ID:          "A.11.1.1",
			Title:       "Physical Security Perimeter",
			Description: "Security perimeters shall be defined and used to protect areas that contain either sensitive or critical information",
			FrameworkID: "iso27001",
			DomainID:    "A.11",
			RiskLevel:   model.RiskMedium,
			ControlType: model.TypePhysical,
			Tags:        []string{"iso27001", "isms", "information-security", "physical"},
		},
		{
			ID:          "A.12.1.2",
			Title:       "Change Management",
			Description: "Changes to the organization, business processes, information processing facilities and systems shall be controlled",
			FrameworkID: "iso27001",
			DomainID:    "A.12",
			RiskLevel:   model.RiskHigh,
			ControlType: model.TypeProcedural,
			Tags:        []string{"iso27001", "isms", "information-security", "change-management"},
		},
		{
			ID:          "A.12.6.1",
			Title:       "Management of Technical Vulnerabilities",
			Description: "Information about technical vulnerabilities of information systems being used shall be obtained in a timely fashion",
			FrameworkID: "iso27001",
			DomainID:    "A.12",
			RiskLevel:   model.RiskCritical,
			ControlType: model.TypeTechnical,
			Tags:        []string{"iso27001", "isms", "information-security", "vulnerability-management"},
		},
	} {
		fw.AddControl(c)
	}

	return fw
}
