package frameworks

import "github.com/complymap/complymap/pkg/model"

// NISTCSF returns the NIST Cybersecurity Framework (1.1) definition:
// the five core functions as domains and a representative subcategory
// subset.
func NISTCSF() *model.Framework {
	fw := model.NewFramework(
		"nist-csf",
		"NIST Cybersecurity Framework",
		"1.1",
		"Framework for Improving Critical Infrastructure Cybersecurity",
	)

	for _, d := range []*model.Domain{
		model.NewDomain("ID", "Identify",
			"Develop an organizational understanding to manage cybersecurity risk", "nist-csf"),
		model.NewDomain("PR", "Protect",
			"Develop and implement appropriate safeguards to ensure delivery of critical services", "nist-csf"),
		model.NewDomain("DE", "Detect",
			"Develop and implement appropriate activities to identify the occurrence of a cybersecurity event", "nist-csf"),
		model.NewDomain("RS", "Respond",
			"Develop and implement appropriate activities to take action regarding a detected cybersecurity incident", "nist-csf"),
		model.NewDomain("RC", "Recover",
			"Develop and implement appropriate activities to maintain plans for resilience and to restore any capabilities or services", "nist-csf"),
	} {
		fw.AddDomain(d)
	}

	for _, c := range []*model.Control{
		{
			ID:          "ID.AM-1",
			Title:       "Asset Management - Physical Devices and Systems",
			Description: "Physical devices and systems within the organization are inventoried",
			FrameworkID: "nist-csf",
			DomainID:    "ID",
			RiskLevel:   model.RiskHigh,
			ControlType: model.TypeProcedural,
			Tags:        []string{"nist", "cybersecurity", "framework", "assets"},
		},
		{
			ID:          "ID.AM-2",
			Title:       "Asset Management - Software Platforms and Applications",
			Description: "Software platforms and applications within the organization are inventoried",
			FrameworkID: "nist-csf",
			DomainID:    "ID",
			RiskLevel:   model.RiskHigh,
			ControlType: model.TypeProcedural,
			Tags:        []string{"nist", "cybersecurity", "framework", "assets"},
		},
		{
			ID:          "ID.GV-1",
			Title:       "Governance - Information Security Policy",
			Description: "Organizational cybersecurity policy is established and communicated",
			FrameworkID: "nist-csf",
			DomainID:    "ID",
			RiskLevel:   model.RiskCritical,
			ControlType: model.TypeProcedural,
			Tags:        []string{"nist", "cybersecurity", "framework", "governance"},
		},
		{
			ID:          "ID.RA-1",
			Title:       "Risk Assessment - Risk Management Process",
			Description: "Asset vulnerabilities are identified and documented",
			FrameworkID: "nist-csf",
			DomainID:    "ID",
			RiskLevel:   model.RiskHigh,
			ControlType: model.TypeProcedural,
			Tags:        []string{"nist", "cybersecurity", "framework", "risk-assessment"},
		},
		{
			ID:          "PR.AC-1",
			Title:       "Access Control - Identity Management",
			Description: "Identities and credentials are issued, managed, verified, revoked, and audited for authorized devices, users and processes",
			FrameworkID: "nist-csf",
			DomainID:    "PR",
			RiskLevel:   model.RiskCritical,
			ControlType: model.TypeTechnical,
			Tags:        []string{"nist", "cybersecurity", "framework", "access-control"},
		},
		{
			ID:          "PR.AC-3",
			Title:       "Access Control - Remote Access",
			Description: "Remote access is managed",
			FrameworkID: "nist-csf",
			DomainID:    "PR",
			RiskLevel:   model.RiskHigh,
			ControlType: model.TypeTechnical,
			Tags:        []string{"nist", "cybersecurity", "framework", "access-control"},
		},
		{
			ID:          "PR.DS-1",
			Title:       "Data Security - Data-at-rest Protection",
			Description: "Data-at-rest is protected",
			FrameworkID: "nist-csf",
			DomainID:    "PR",
			RiskLevel:   model.RiskHigh,
			ControlType: model.TypeTechnical,
			Tags:        []string{"nist", "cybersecurity", "framework", "data-security"},
		},
		{
			ID:          "PR.DS-2",
			Title:       "Data Security - Data-in-transit Protection",
			Description: "Data-in-transit is protected",
			FrameworkID: "nist-csf",
			DomainID:    "PR",
			RiskLevel:   model.RiskHigh,
			ControlType: model.TypeTechnical,
			Tags:        []string{"nist", "cybersecurity", "framework", "data-security"},
		},
		{
			ID:          "PR.PT-1",
			Title:       "Protective Technology - Audit Logs",
			Description: "Audit/log records are determined, documented, implemented, and reviewed",
			FrameworkID: "nist-csf",
			DomainID:    "PR",
			RiskLevel:   model.RiskMedium,
			ControlType: model.TypeTechnical,
			Tags:        []string{"nist", "cybersecurity", "framework", "logging"},
		},
		{
			ID:          "DE.AE-1",
			Title:       "Anomalies and Events - Baseline Establishment",
			Description: "A baseline of network operations and expected data flows for users and systems is established and managed",
			FrameworkID: "nist-csf",
			DomainID:    "DE",
			RiskLevel:   model.RiskMedium,
			ControlType: model.TypeTechnical,
			Tags:        []string{"nist", "cybersecurity", "framework", "detection"},
		},
		{
			ID:          "DE.CM-1",
			Title:       "Security Continuous Monitoring - System Monitoring",
			Description: "The network and physical environment is monitored to detect potential cybersecurity events",
			FrameworkID: "nist-csf",
			DomainID:    "DE",
			RiskLevel:   model.RiskHigh,
			ControlType: model.TypeTechnical,
			Tags:        []string{"nist", "cybersecurity", "framework", "monitoring"},
		},
		{
			ID:          "RS.RP-1",
			Title:       "Response Planning - Response Plan",
			Description: "Response plan is executed during or after an incident",
			FrameworkID: "nist-csf",
			DomainID:    "RS",
			RiskLevel:   model.RiskHigh,
			ControlType: model.TypeProcedural,
			Tags:        []string{"nist", "cybersecurity", "framework", "incident-response"},
		},
		{
			ID:          "RS.CO-2",
			Title:       "Communications - Incident Reporting",
			Description: "Incidents are reported consistent with established criteria",
			FrameworkID: "nist-csf",
			DomainID:    "RS",
			RiskLevel:   model.RiskMedium,
			ControlType: model.TypeProcedural,
			Tags:        []string{"nist", "cybersecurity", "framework", "incident-response"},
		},
		{
			ID:          "RC.RP-1",
			Title:       "Recovery Planning - Recovery Plan",
			Description: "Recovery plan is executed during or after a cybersecurity incident",
			FrameworkID: "nist-csf",
			DomainID:    "RC",
			RiskLevel:   model.RiskHigh,
			ControlType: model.TypeProcedural,
			Tags:        []string{"nist", "cybersecurity", "framework", "recovery"},
		},
		{
			ID:          "RC.IM-1",
			Title:       "Improvements - Lessons Learned",
			Description: "Recovery plans incorporate lessons learned",
			FrameworkID: "nist-csf",
			DomainID:    "RC",
			RiskLevel:   model.RiskMedium,
			ControlType: model.TypeProcedural,
			Tags:        []string{"nist", "cybersecurity", "framework", "recovery"},
		},
	} {
		fw.AddControl(c)
	}

	return fw
}
