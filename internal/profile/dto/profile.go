package dto

import "devconnector-backend/pkg/validation"

// UpsertProfileRequest is the create-or-update body. Empty fields leave stored values untouched,
// except social links, which are replaced as a group.
type UpsertProfileRequest struct {
	Company        string `json:"company"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Bio            string `json:"bio"`
	Status         string `json:"status" binding:"required"`
	GitHubUsername string `json:"githubusername"`
	// Skills is a comma-separated list.
	Skills    string `json:"skills" binding:"required"`
	YouTube   string `json:"youtube"`
	Twitter   string `json:"twitter"`
	Facebook  string `json:"facebook"`
	LinkedIn  string `json:"linkedin"`
	Instagram string `json:"instagram"`
}

var UpsertProfileMessages = validation.Messages{
	"status": "Status is required",
	"skills": "Skills is required",
}

type ExperienceRequest struct {
	Title       string `json:"title" binding:"required"`
	Company     string `json:"company" binding:"required"`
	Location    string `json:"location"`
	From        string `json:"from" binding:"required"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

var ExperienceMessages = validation.Messages{
	"title":   "Title is required",
	"company": "Company is required",
	"from":    "From date required",
}

type EducationRequest struct {
	School       string `json:"school" binding:"required"`
	Degree       string `json:"degree" binding:"required"`
	FieldOfStudy string `json:"fieldofstudy" binding:"required"`
	From         string `json:"from" binding:"required"`
	To           string `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

var EducationMessages = validation.Messages{
	"school":       "School is required",
	"degree":       "Degree is required",
	"fieldofstudy": "Field of study is required",
	"from":         "From date required",
}
