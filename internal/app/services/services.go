// Package services contains the business logic behind the HTTP handlers.
//
// Services defined in this package:
// - AuthService: registration, login, resume storage
// - InternshipService: posting lifecycle and company listings
// - ApplicationService: student applications and review states
// - ProfileService: student/company profile reads and patches
// - AdminService: moderation and account administration
package services
