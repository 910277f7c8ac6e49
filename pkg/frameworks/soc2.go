package frameworks

import "github.com/complymap/complymap/pkg/model"

// SOC2 returns the SOC 2 (2017 Trust Services Criteria) framework
// definition: the five trust categories as domains and the common
// criteria controls most often mapped against other standards.
func SOC2() *model.Framework {
	fw := model.NewFramework(
		"soc2",
		"SOC 2",
		"2017",
		"System and Organization Controls 2 - Trust Services Criteria for Security, Availability, Processing Integrity, Confidentiality, and Privacy",
	)

	for _, d := range []*model.Domain{
		model.NewDomain("security", "Security",
			"The system is protected against unauthorized access", "soc2"),
		model.NewDomain("availability", "Availability",
			"The system is available for operation and use", "soc2"),
		model.NewDomain("processing_integrity", "Processing Integrity",
			"System processing is complete, valid, accurate, timely, and authorized", "soc2"),
		model.NewDomain("confidentiality", "Confidentiality",
			"Information designated as confidential is protected", "soc2"),
		model.NewDomain("privacy", "Privacy",
			"Personal information is collected, used, retained, disclosed, and disposed of in conformity with commitments", "soc2"),
	} {
		fw.AddDomain(d)
	}

	for _, c := range []*model.Control{
		{
			ID:          "CC1.1",
			Title:       "Control Environment - Integrity and Ethical Values",
			Description: "The entity demonstrates a commitment to integrity and ethical values",
			FrameworkID: "soc2",
			DomainID:    "security",
			RiskLevel:   model.RiskHigh,
			ControlType: model.TypeProcedural,
			Tags:        []string{"soc2", "audit", "compliance", "governance"},
		},
		{
			ID:          "CC1.2",
			Title:       "Control Environment - Board Independence",
			Description: "The board of directors demonstrates independence from management and exercises oversight",
			FrameworkID: "soc2",
			DomainID:    "security",
			RiskLevel:   model.RiskMedium,
			ControlType: model.TypeProcedural,
			Tags:        []string{"soc2", "audit", "compliance", "governance"},
		},
		{
			ID:          "CC2.1",
			Title:       "Communication and Information - Internal Communication",
			Description: "The entity obtains or generates and uses relevant, quality information to support the functioning of internal control",
			FrameworkID: "soc2",
			DomainID:    "security",
			RiskLevel:   model.RiskMedium,
			ControlType: model.TypeProcedural,
			Tags:        []string{"soc2", "audit", "compliance", "communication"},
		},
		{
			ID:          "CC3.1",
			Title:       "Risk Assessment - Objectives",
			Description: "The entity specifies objectives with sufficient clarity to enable the identification and assessment of risks",
			FrameworkID: "soc2",
			DomainID:    "security",
			RiskLevel:   model.RiskHigh,
			ControlType: model.TypeProcedural,
			Tags:        []string{"soc2", "audit", "compliance", "risk-management"},
		},
		{
			ID:          "CC4.1",
			Title:       "Monitoring Activities - Ongoing Monitoring",
			Description: "The entity selects, develops, and performs ongoing and/or separate evaluations",
			FrameworkID: "soc2",
			DomainID:    "security",
			RiskLevel:   model.RiskHigh,
			ControlType: model.TypeProcedural,
			Tags:        []string{"soc2", "audit", "compliance", "monitoring"},
		},
		{
			ID:          "CC5.1",
			Title:       "Control Activities - Selection and Development",
			Description: "The entity selects and develops control activities that contribute to the mitigation of risks",
			FrameworkID: "soc2",
			DomainID:    "security",
			RiskLevel:   model.RiskHigh,
			ControlType: model.TypeProcedural,
			Tags:        []string{"soc2", "audit", "compliance", "controls"},
		},
		{
			ID:          "CC6.1",
			Title:       "Logical and Physical Access Controls - Access Control",
			Description: "The entity implements logical access security software, infrastructure, and architectures over protected information assets",
			FrameworkID: "soc2",
			DomainID:    "security",
			RiskLevel:   model.RiskCritical,
			ControlType: model.TypeTechnical,
			Tags:        []string{"soc2", "audit", "compliance", "access-control"},
		},
		{
			ID:          "CC6.2",
			Title:       "Logical and Physical Access Controls - Authentication",
			Description: "Prior to issuing system credentials and granting system access, the entity registers and authorizes new internal and external users",
			FrameworkID: "soc2",
			DomainID:    "security",
			RiskLevel:   model.RiskCritical,
			ControlType: model.TypeTechnical,
			Tags:        []string{"soc2", "audit", "compliance", "authentication"},
		},
		{
			ID:          "CC6.7",
			Title:       "System Operations - Data Transmission",
			Description: "The entity restricts the transmission of data and software to defined system users",
			FrameworkID: "soc2",
			DomainID:    "security",
			RiskLevel:   model.RiskHigh,
			ControlType: model.TypeTechnical,
			Tags:        []string{"soc2", "audit", "compliance", "data-transmission"},
		},
		{
			ID:          "CC7.1",
			Title:       "System Operations - System Monitoring",
			Description: "The entity monitors the system and various communications channels for security events",
			FrameworkID: "soc2",
			DomainID:    "security",
			RiskLevel:   model.RiskHigh,
			ControlType: model.TypeTechnical,
			Tags:        []string{"soc2", "audit", "compliance", "monitoring"},
		},
		{
			ID:          "A1.1",
			Title:       "Availability - System Capacity",
			Description: "The entity maintains system capacity consistent with system processing requirements",
			FrameworkID: "soc2",
			DomainID:    "availability",
			RiskLevel:   model.RiskHigh,
			ControlType: model.TypeTechnical,
			Tags:        []string{"soc2", "audit", "compliance", "availability"},
		},
		{
			ID:          "A1.2",
			Title:       "Availability - Environmental Protection",
			Description: "The entity authorizes, designs, develops or acquires, implements, operates, approves, maintains, and monitors environmental protections",
			FrameworkID: "soc2",
			DomainID:    "availability",
			RiskLevel:   model.RiskMedium,
			ControlType: model.TypePhysical,
			Tags:        []string{"soc2", "audit", "compliance", "availability"},
		},
	} {
		fw.AddControl(c)
	}

	return fw
}
