package speech

// navigationURLs maps spoken page names to frontend routes.
var navigationURLs = map[string]string{
	"website":   "/tools/website",
	"email":     "/tools/email",
	"feedback":  "/tools/feedback",
	"poster":    "/tools/poster",
	"sales":     "/tools/sales",
	"dashboard": "/dashboard",
	"profile":   "/profile",
}

// fieldNameSynonyms maps spoken field names to canonical schema keys.
var fieldNameSynonyms = map[string]string{
	"name":          "businessName",
	"business name": "businessName",
	"company name":  "businessName",
	"title":         "posterTitle",
	"subject":       "emailPurpose",
	"description":   "businessDescription",
	"message":       "feedbackText",
	"feedback":      "feedbackText",
	"email":         "customerEmail",
	"type":          "websiteType",
}

var supportedPages = []string{"website", "email", "feedback", "poster", "sales", "dashboard"}

var supportedActions = []string{
	ActionFillForm,
	ActionNavigate,
	ActionExecuteTool,
	ActionCombination,
	ActionError,
}

// SupportedLanguages lists the speech recognition locales the frontend may
// offer.
var SupportedLanguages = []string{"en-US", "en-GB", "hi-IN", "te-IN"}

// defaultPageContexts builds the per-page form schemas. Keyword lists are
// ordered slices so that classification of free-form values is deterministic.
func defaultPageContexts() map[string]PageContext {
	return map[string]PageContext{
		"website": {
			Fields: map[string]FieldSchema{
				"websiteType": {
					Type:    FieldSelect,
					Options: []string{"business", "portfolio", "ecommerce", "blog", "restaurant", "services"},
					Keywords: []OptionTriggers{
						{Option: "business", Triggers: []string{"business", "company", "corporate", "office"}},
						{Option: "restaurant", Triggers: []string{"restaurant", "cafe", "food", "dining", "kitchen"}},
						{Option: "portfolio", Triggers: []string{"portfolio", "personal", "showcase", "work"}},
						{Option: "ecommerce", Triggers: []string{"store", "shop", "ecommerce", "selling", "products"}},
						{Option: "services", Triggers: []string{"services", "consulting", "professional", "agency"}},
						{Option: "blog", Triggers: []string{"blog", "writing", "articles", "content"}},
					},
				},
				"businessName":        {Type: FieldText, Required: true},
				"businessDescription": {Type: FieldTextarea},
				"keyServices":         {Type: FieldText},
				"targetAudience":      {Type: FieldText},
				"colorScheme": {
					Type:    FieldSelect,
					Options: []string{"professional", "modern", "warm", "nature", "creative"},
					Keywords: []OptionTriggers{
						{Option: "professional", Triggers: []string{"professional", "business", "corporate", "formal"}},
						{Option: "modern", Triggers: []string{"modern", "contemporary", "sleek", "minimalist"}},
						{Option: "warm", Triggers: []string{"warm", "friendly", "welcoming", "cozy"}},
						{Option: "nature", Triggers: []string{"nature", "green", "organic", "natural", "eco"}},
						{Option: "creative", Triggers: []string{"creative", "artistic", "colorful", "vibrant"}},
					},
				},
			},
		},
		"email": {
			Fields: map[string]FieldSchema{
				"emailType": {
					Type:    FieldSelect,
					Options: []string{"marketing", "customer_service", "follow_up", "thank_you", "announcement", "invitation"},
					Keywords: []OptionTriggers{
						{Option: "marketing", Triggers: []string{"marketing", "promotional", "advertisement", "campaign"}},
						{Option: "customer_service", Triggers: []string{"support", "service", "help", "assistance", "customer"}},
						{Option: "thank_you", Triggers: []string{"thank", "thanks", "appreciation", "grateful"}},
						{Option: "follow_up", Triggers: []string{"follow up", "followup", "check in", "update"}},
						{Option: "announcement", Triggers: []string{"announcement", "news", "update", "information"}},
						{Option: "invitation", Triggers: []string{"invitation", "invite", "event", "meeting"}},
					},
				},
				"recipientType": {
					Type:    FieldSelect,
					Options: []string{"customer", "prospect", "partner"},
					Keywords: []OptionTriggers{
						{Option: "customer", Triggers: []string{"customer", "client", "existing", "current"}},
						{Option: "prospect", Triggers: []string{"prospect", "potential", "new", "lead"}},
						{Option: "partner", Triggers: []string{"partner", "vendor", "supplier", "collaborator"}},
					},
				},
				"emailTone": {
					Type:    FieldSelect,
					Options: []string{"professional", "friendly", "casual", "formal", "urgent"},
					Keywords: []OptionTriggers{
						{Option: "professional", Triggers: []string{"professional", "business"}},
						{Option: "friendly", Triggers: []string{"friendly", "warm", "personal"}},
						{Option: "casual", Triggers: []string{"casual", "informal", "relaxed"}},
						{Option: "formal", Triggers: []string{"formal", "official"}},
						{Option: "urgent", Triggers: []string{"urgent", "important", "immediate"}},
					},
				},
				"emailPurpose": {Type: FieldText},
				"emailContext": {Type: FieldTextarea},
				"senderName":   {Type: FieldText},
			},
		},
		"feedback": {
			Fields: map[string]FieldSchema{
				"feedbackText": {Type: FieldTextarea, Required: true},
			},
			AutoSubmit: true,
		},
		"poster": {
			Fields: map[string]FieldSchema{
				"posterType": {
					Type:    FieldSelect,
					Options: []string{"promotional", "event", "product", "service", "announcement"},
					Keywords: []OptionTriggers{
						{Option: "promotional", Triggers: []string{"sale", "promotion", "discount", "offer", "deal"}},
						{Option: "event", Triggers: []string{"event", "opening", "launch", "workshop", "conference"}},
						{Option: "product", Triggers: []string{"product", "new product", "launch"}},
						{Option: "service", Triggers: []string{"service", "services"}},
						{Option: "announcement", Triggers: []string{"announcement", "news", "update"}},
					},
				},
				"posterTitle":       {Type: FieldText},
				"posterSubtitle":    {Type: FieldText},
				"posterDescription": {Type: FieldTextarea},
				"businessName":      {Type: FieldText},
				"colorScheme": {
					Type:    FieldSelect,
					Options: []string{"modern", "vibrant", "professional", "nature", "creative", "minimalist"},
				},
				"posterSize": {
					Type:    FieldSelect,
					Options: []string{"medium", "large", "a4", "social_media"},
				},
			},
		},
		"sales":     {Fields: map[string]FieldSchema{}},
		"dashboard": {Fields: map[string]FieldSchema{}},
	}
}
