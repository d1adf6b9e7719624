package webfinger

// Relation types advertised for the identity provider, in response order.
const (
	RelIssuer                = "http://openid.net/specs/connect/1.0/issuer"
	RelAuthorizationEndpoint = "authorization_endpoint"
	RelTokenEndpoint         = "token_endpoint"
	RelUserinfoEndpoint      = "userinfo_endpoint"
	RelJWKSURI               = "jwks_uri"
)

// AcctPrefix is the scheme prefix every accepted resource must carry
const AcctPrefix = "acct:"

// Response is the JSON Resource Descriptor returned for a lookup
type Response struct {
	Subject string `json:"subject"`
	Links   []Link `json:"links"`
}

// Link is a single relation in a Response
type Link struct {
	Rel  string `json:"rel"`
	Href string `json:"href"`
}

// IssuerURL returns the base issuer URL for domain. The domain is not validated.
func IssuerURL(domain string) string {
	return "https://" + domain + "/application/o/tailscale/"
}

// BuildLinks returns the five OpenID Connect links derived from issuer.
func BuildLinks(issuer string) []Link {
	return []Link{
		{Rel: RelIssuer, Href: issuer},
		{Rel: RelAuthorizationEndpoint, Href: issuer + "oauth2/authorize"},
		{Rel: RelTokenEndpoint, Href: issuer + "oauth2/token"},
		{Rel: RelUserinfoEndpoint, Href: issuer + "userinfo"},
		{Rel: RelJWKSURI, Href: issuer + "jwks"},
	}
}
