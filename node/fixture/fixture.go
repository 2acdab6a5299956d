/*
	Copyright (C) CESS. All rights reserved.
	Copyright (C) Cumulus Encrypted Storage System. All rights reserved.

	SPDX-License-Identifier: Apache-2.0
*/

// Package fixture holds the sample records shown on the dashboards.
package fixture

type Stat struct {
	Title string
	Value string
	Link  string
}

type Activity struct {
	Type  string
	Title string
	// Party is the institute, viewer or recipient, depending on Type.
	Party string
	Date  string
	Time  string
}

type Request struct {
	Type            string
	StudentName     string
	StudentID       string
	RequestDate     string
	CertificateType string
	NewInstitute    string
}

type IssuedCertificate struct {
	StudentName      string
	CertificateTitle string
	IssueDate        string
	TxHash           string
}

type StudentDashboard struct {
	Stats      []Stat
	Activities []Activity
}

type InstituteDashboard struct {
	Stats              []Stat
	PendingRequests    []Request
	RecentCertificates []IssuedCertificate
}

// Student returns a fresh copy on every call.
func Student() StudentDashboard {
	return StudentDashboard{
		Stats: []Stat{
			{Title: "Certificates", Value: "3", Link: "/student/certificates"},
			{Title: "Pending", Value: "1", Link: "/student/pending"},
			{Title: "Shared", Value: "2", Link: "/student/shared"},
			{Title: "Viewed", Value: "5", Link: "/student/history"},
		},
		Activities: []Activity{
			{Type: "Certificate Issued", Title: "B.Sc. Computer Science", Party: "MIT University", Date: "2023-04-15", Time: "10:30 AM"},
			{Type: "Certificate Viewed", Title: "Web Development Certificate", Party: "Tech Company Inc.", Date: "2023-04-10", Time: "02:15 PM"},
			{Type: "Certificate Shared", Title: "Blockchain Fundamentals", Party: "example@company.com", Date: "2023-04-05", Time: "11:45 AM"},
		},
	}
}

// Institute returns a fresh copy on every call.
func Institute() InstituteDashboard {
	return InstituteDashboard{
		Stats: []Stat{
			{Title: "Students", Value: "142", Link: "/institute/students"},
			{Title: "Certificates", Value: "87", Link: "/institute/certificates"},
			{Title: "Pending", Value: "5", Link: "/institute/pending"},
			{Title: "Issues", Value: "1", Link: "/institute/issues"},
		},
		PendingRequests: []Request{
			{Type: "Certificate Request", StudentName: "John Doe", StudentID: "0x1234...5678", RequestDate: "2023-04-15", CertificateType: "Bachelor Degree"},
			{Type: "Certificate Request", StudentName: "Jane Smith", StudentID: "0x8765...4321", RequestDate: "2023-04-14", CertificateType: "Course Completion"},
			{Type: "Institute Change", StudentName: "Michael Brown", StudentID: "0x9876...5432", RequestDate: "2023-04-10", NewInstitute: "Stanford University"},
		},
		RecentCertificates: []IssuedCertificate{
			{StudentName: "Alice Johnson", CertificateTitle: "Master of Science in Data Science", IssueDate: "2023-04-10", TxHash: "0x1234...abcd"},
			{StudentName: "Bob Williams", CertificateTitle: "Bachelor of Technology", IssueDate: "2023-04-08", TxHash: "0xabcd...1234"},
		},
	}
}
