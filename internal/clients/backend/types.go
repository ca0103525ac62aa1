package backend

import "fmt"

type CampaignStatus string

const (
	CampaignStatusDraft       CampaignStatus = "Draft"
	CampaignStatusUAT         CampaignStatus = "UAT"
	CampaignStatusProd        CampaignStatus = "Prod"
	CampaignStatusDeactivated CampaignStatus = "Deactivated"
)

func (s CampaignStatus) Valid() bool {
	switch s {
	case CampaignStatusDraft, CampaignStatusUAT, CampaignStatusProd, CampaignStatusDeactivated:
		return true
	}
	return false
}

type UserStatus string

const (
	UserStatusActive   UserStatus = "Active"
	UserStatusInactive UserStatus = "Inactive"
)

// UserRole is the role of a managed user; superAdmin is never listed or created.
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleNurse UserRole = "nurse"
)

// UserRef is a lightweight user reference embedded in brands and campaigns.
type UserRef struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
}

// BrandRef is a lightweight brand reference embedded in users.
type BrandRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name,omitempty"`
}

type Brand struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	LogoURL        *string   `json:"logo_url,omitempty"`
	Description    *string   `json:"description,omitempty"`
	CreatedAt      string    `json:"createdAt,omitempty"`
	AssignedAdmins []UserRef `json:"assignedAdmins"`
}

type Campaign struct {
	ID             int64          `json:"id"`
	Name           string         `json:"name"`
	LogoURL        *string        `json:"logo_url,omitempty"`
	BrandID        int64          `json:"brand_id"`
	Status         CampaignStatus `json:"status"`
	PhoneNumber    *string        `json:"phoneNumber,omitempty"`
	Notes          string         `json:"notes"`
	AssignedNurses []UserRef      `json:"assignedNurses"`
	CreatedAt      string         `json:"createdAt,omitempty"`
}

type User struct {
	ID             int64      `json:"id"`
	FirstName      string     `json:"firstName"`
	LastName       string     `json:"lastName"`
	Email          string     `json:"email"`
	Role           UserRole   `json:"role"`
	Status         UserStatus `json:"status"`
	AssignedBrands []BrandRef `json:"assignedBrands"`
}

// Requests

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateBrandRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	LogoURL     string `json:"logo_url"`
}

type UpdateBrandRequest struct {
	BrandID     int64  `json:"brand_id"`
	BrandName   string `json:"brand_name"`
	Description string `json:"description"`
	LogoURL     string `json:"logo_url"`
}

type UploadLogoRequest struct {
	BrandID       int64  `json:"brand_id"`
	Base64Image   string `json:"base64Image"`
	FileExtension string `json:"fileExtension,omitempty"`
}

type CreateCampaignRequest struct {
	Name        string  `json:"name"`
	LogoURL     string  `json:"logo_url"`
	BrandID     int64   `json:"brand_id"`
	CampaignURL string  `json:"campaign_url"`
	Notes       string  `json:"notes"`
	NurseIDs    []int64 `json:"nurse_ids"`
	WorkNumber  string  `json:"work_number"`
}

// UpdateCampaignRequest only sends the fields that are set.
type UpdateCampaignRequest struct {
	CampaignID     int64           `json:"campaign_id"`
	Name           *string         `json:"name,omitempty"`
	LogoURL        *string         `json:"logo_url,omitempty"`
	CampaignURL    *string         `json:"campaign_url,omitempty"`
	Notes          *string         `json:"notes,omitempty"`
	WorkNumber     *string         `json:"work_number,omitempty"`
	CampaignStatus *CampaignStatus `json:"campaignStatus,omitempty"`
}

type RevokeNursesRequest struct {
	NurseIDs   []int64 `json:"nurse_ids"`
	BrandID    int64   `json:"brand_id"`
	CampaignID int64   `json:"campaign_id"`
}

type CreateUserRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	BrandID   int64  `json:"brand_id"`
}

type GenerateVCFRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
	LogoURL     string `json:"logo_url"`
}

// Responses. Each one checks that the fields the console relies on are present.

type shape interface {
	validate() error
}

type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

func (r *LoginResponse) validate() error {
	if r.Token == "" {
		return fmt.Errorf("%w: login response has no token", ErrUnexpectedResponse)
	}
	return nil
}

type listBrandsResponse struct {
	Brands *[]Brand `json:"brands"`
}

func (r *listBrandsResponse) validate() error {
	if r.Brands == nil {
		return fmt.Errorf("%w: missing brands", ErrUnexpectedResponse)
	}
	return nil
}

type createBrandResponse struct {
	BrandID *int64 `json:"brand_id"`
	ID      *int64 `json:"id"`
}

func (r *createBrandResponse) validate() error {
	if r.BrandID == nil && r.ID == nil {
		return fmt.Errorf("%w: create brand returned no id", ErrUnexpectedResponse)
	}
	return nil
}

func (r *createBrandResponse) id() int64 {
	if r.BrandID != nil {
		return *r.BrandID
	}
	return *r.ID
}

type uploadLogoResponse struct {
	LogoURL string `json:"logo_url"`
}

func (r *uploadLogoResponse) validate() error {
	if r.LogoURL == "" {
		return fmt.Errorf("%w: upload returned no logo_url", ErrUnexpectedResponse)
	}
	return nil
}

type listCampaignsResponse struct {
	Campaigns *[]Campaign `json:"campaigns"`
}

func (r *listCampaignsResponse) validate() error {
	if r.Campaigns == nil {
		return fmt.Errorf("%w: missing campaigns", ErrUnexpectedResponse)
	}
	return nil
}

type getCampaignResponse struct {
	Campaign *Campaign `json:"campaign"`
}

func (r *getCampaignResponse) validate() error {
	if r.Campaign == nil {
		return fmt.Errorf("%w: missing campaign", ErrUnexpectedResponse)
	}
	return nil
}

type listNursesResponse struct {
	Nurses *[]User `json:"nurses"`
}

func (r *listNursesResponse) validate() error {
	if r.Nurses == nil {
		return fmt.Errorf("%w: missing nurses", ErrUnexpectedResponse)
	}
	return nil
}

type listAdminsResponse struct {
	Admins *[]User `json:"admins"`
}

func (r *listAdminsResponse) validate() error {
	if r.Admins == nil {
		return fmt.Errorf("%w: missing admins", ErrUnexpectedResponse)
	}
	return nil
}

type generateVCFResponse struct {
	FileURL string `json:"file_url"`
}

func (r *generateVCFResponse) validate() error {
	if r.FileURL == "" {
		return fmt.Errorf("%w: generate returned no file_url", ErrUnexpectedResponse)
	}
	return nil
}
