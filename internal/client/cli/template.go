package cli

const usageTemplate = `
Nakhrali Storefront Client

Usage:
  storefront [OPTIONS] COMMAND

Options:
  --version              Show version information
  --config PATH          Path to config file (default: storefront.toml)
  --server URL           API base URL (default: http://localhost:8000/api)
  --db PATH              Path to local database (default: storefront-client.db)
  --password PASSWORD    Account password (not recommended, use env var or file)
  --password-file PATH   Path to file containing the account password

Password Priority (highest to lowest):
  1. NAKHRALI_PASSWORD environment variable
  2. --password-file (file path)
  3. --password (command line)
  4. Interactive prompt (fallback)

Commands:
  register                         Create an account
  login                            Sign in
  logout                           Sign out
  status                           Show session status
  profile [--first NAME] [--last NAME] [--phone PHONE]
                                   Update profile fields
  change-password                  Change the account password
  forgot-password <email>          Request a password reset email
  reset-password <token>           Reset the password with an emailed token

  cart show                        Show the cart
  cart add <product-id> [--variant ID] [--qty N] [--price P] [--name NAME]
  cart update <product-id> [--variant ID] --qty N
  cart remove <product-id> [--variant ID]
  cart clear                       Empty the cart
  cart sync                        Reconcile the cart with the server

  wishlist show                    Show the wishlist
  wishlist add <product-id> [--variant ID]
  wishlist remove <entry-id>
  wishlist toggle <product-id> [--variant ID]
  wishlist move <entry-id> [--qty N]
  wishlist clear

  reviews product <product-id> [--page N] [--rating 1-5] [--verified] [--images]
  reviews mine [--page N]
  reviews add <product-id> --rating 1-5 [--title T] <text...>
  reviews update <review-id> --rating 1-5 [--title T] <text...>
  reviews delete <review-id>
  reviews helpful <review-id>

  search <term...> [--category C] [--material M] [--sort S] [--page N]
  search quick <term>              Autocomplete-style lookup
  search recent                    Show recent searches
  search clear-recent              Wipe the recent-search history

  ship track <order-id>
  ship label <order-id>
  ship rates <pincode> [--weight KG] [--cod]
  ship check <pincode>

  theme show                       Show the active theme
  theme set <light|dark|system>    Set or clear the explicit preference
  theme toggle                     Switch between light and dark

Examples:
  storefront login
  storefront search emerald ring --category rings
  storefront cart add prod-42 --qty 2
  storefront ship check 560001
  storefront --server https://nakhrali.example.com/api status
`

const statusTemplate = `
=== Session Status ===

Signed in:  {{if .Authenticated}}yes{{else}}no{{end}}
{{- if .Authenticated}}
Name:       {{.Name}}
Email:      {{.Email}}
Role:       {{.Role}}
{{- end}}
`

const cartTemplate = `
=== Cart ===

{{- if eq (len .Lines) 0 }}
Your cart is empty.
{{ else }}
{{- range .Lines }}
- {{ .Product.Name }}
   Product: {{ .Product.ID }}
   {{- with .Variant }}
   Variant: {{ .ID }}
   {{- end }}
   Qty:     {{ .Quantity }} x {{ printf "%.2f" .UnitPrice }}
{{ end }}
Items: {{ .Count }}
Total: {{ printf "%.2f" .Total }}
{{- end }}
`

const wishlistTemplate = `
=== Wishlist ===

{{- if eq (len .) 0 }}
Your wishlist is empty.
{{ else }}
{{- range . }}
- {{ if .Product.Name }}{{ .Product.Name }}{{ else }}{{ .ProductID }}{{ end }}
   Entry:   {{ .ID }}
   Product: {{ .ProductID }}
   {{- if .VariantID }}
   Variant: {{ .VariantID }}
   {{- end }}
{{ end }}
{{- end }}
`

const searchResultsTemplate = `
{{- if eq (len .Products) 0 }}
No products found.
{{ else }}
Found {{ .Pagination.Total }} product(s), page {{ .Pagination.Page }} of {{ .Pagination.TotalPages }}:

{{- range .Products }}
- {{ .Name }}
   ID:    {{ .ID }}
   Price: {{ printf "%.2f" .Price }}
   {{- if .Category }}
   Category: {{ .Category }}
   {{- end }}
{{ end }}
{{- end }}
`

const productReviewsTemplate = `
=== Reviews ===

Average: {{ printf "%.1f" .Stats.AverageRating }} ({{ .Stats.TotalReviews }} review(s))

{{- if eq (len .Reviews) 0 }}

No reviews on this page.
{{ else }}
{{- range .Reviews }}
- {{ .Rating }}/5 {{ if .Title }}{{ .Title }} {{ end }}by {{ .Author.Name }}
   {{ .Text }}
   Helpful: {{ .HelpfulCount }}{{ if .VerifiedPurchase }}  [verified purchase]{{ end }}
   ID: {{ .ID }}
{{ end }}
{{- end }}
`

const userReviewsTemplate = `
=== Your Reviews ===

{{- if eq (len .) 0 }}
You have not written any reviews.
{{ else }}
{{- range . }}
- {{ .Rating }}/5 {{ if .Title }}{{ .Title }} {{ end }}on product {{ .ProductID }}
   {{ .Text }}
   ID: {{ .ID }}
{{ end }}
{{- end }}
`

const trackingTemplate = `
=== Tracking ===

Order:   {{ .OrderID }}
Status:  {{ .CurrentStatus }}
Courier: {{ .CourierName }}
AWB:     {{ .TrackingNumber }}
{{- if .EstimatedDelivery }}
ETA:     {{ .EstimatedDelivery }}
{{- end }}
{{- if .Events }}

History:
{{- range .Events }}
  {{ .Date }}  {{ .Status }}  {{ .Location }}
{{- end }}
{{- end }}
`

const ratesTemplate = `
=== Courier Rates ===

{{- if eq (len .AvailableCourierCompanies) 0 }}
No couriers serve this route.
{{ else }}
{{- range .AvailableCourierCompanies }}
- {{ .CourierName }}
   Rate: {{ printf "%.2f" .Rate }}
   ETA:  {{ .EstimatedDeliveryDays }} day(s)
   COD:  {{ if .CODAvailable }}available{{ else }}not available{{ end }}
{{ end }}
{{- end }}
`
