package dto

import (
	"github.com/allisson/mailadmin/internal/maildomain/domain"
)

// DomainFlagsResponse is the delivery configuration of one domain.
type DomainFlagsResponse struct {
	RemoteRelay   *string `json:"remote_relay"`
	SenderVerify  bool    `json:"sender_verify"`
	GreyListing   bool    `json:"grey_listing"`
	VirusCheck    bool    `json:"virus_check"`
	SpamThreshold int     `json:"spam_threshold"`
}

// ListDomainsResponse maps each domain name the caller administers to its
// flags.
type ListDomainsResponse struct {
	Domains map[string]DomainFlagsResponse `json:"domains"`
}

// AllowDenyResponse partitions a domain's sender rules into allows and denys.
type AllowDenyResponse struct {
	Allow []string `json:"allow"`
	Deny  []string `json:"deny"`
}

// MapDomainToFlagsResponse converts a domain to its flags response.
func MapDomainToFlagsResponse(mailDomain *domain.MailDomain) DomainFlagsResponse {
	return DomainFlagsResponse{
		RemoteRelay:   mailDomain.RemoteRelay,
		SenderVerify:  mailDomain.SenderVerify,
		GreyListing:   mailDomain.GreyListing,
		VirusCheck:    mailDomain.VirusCheck,
		SpamThreshold: mailDomain.SpamThreshold,
	}
}

// MapDomainsToListResponse converts a slice of domains to the list response.
func MapDomainsToListResponse(domains []*domain.MailDomain) ListDomainsResponse {
	response := ListDomainsResponse{Domains: make(map[string]DomainFlagsResponse, len(domains))}
	for _, mailDomain := range domains {
		response.Domains[mailDomain.Name] = MapDomainToFlagsResponse(mailDomain)
	}
	return response
}

// MapAllowDenyToResponse partitions allow/deny rules into the response form.
func MapAllowDenyToResponse(entries []*domain.AllowDenyEntry) AllowDenyResponse {
	response := AllowDenyResponse{Allow: []string{}, Deny: []string{}}
	for _, entry := range entries {
		if entry.Allow {
			response.Allow = append(response.Allow, entry.Value)
		} else {
			response.Deny = append(response.Deny, entry.Value)
		}
	}
	return response
}
