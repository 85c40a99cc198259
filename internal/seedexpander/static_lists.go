package seedexpander

// These curated lists are ported from original_source/seed_sources.py's
// hardcoded company lists (crunchbase unicorns, Forbes Cloud 100, the
// well-known tech-company roster, and major healthcare/biotech names).

var unicornCompanies = []string{
	"Stripe", "OpenAI", "Databricks", "Canva", "Figma", "Notion",
	"Discord", "Epic Games", "Instacart", "Coinbase", "Robinhood",
	"Chime", "Plaid", "Airtable", "Flexport", "Gusto", "Zapier",
	"Brex", "Carta", "Benchling", "Scale AI", "Ramp", "Anduril",
	"SpaceX", "Anthropic", "Waymo", "Cruise", "Rivian", "Lucid Motors",
	"ByteDance", "Shein", "Klarna", "Revolut", "Nubank", "Grab",
	"Gojek", "Flipkart", "Paytm", "Ola", "Swiggy", "Zomato",
	"UiPath", "Miro", "Snyk", "HashiCorp", "GitLab", "Elastic",
	"Confluent", "MongoDB", "Snowflake", "DataRobot", "C3.ai",
}

var cloud100Companies = []string{
	"Salesforce", "Workday", "ServiceNow", "Shopify", "Atlassian",
	"Zoom", "DocuSign", "HubSpot", "Twilio", "Cloudflare",
	"Zscaler", "CrowdStrike", "Okta", "SentinelOne", "Datadog",
	"PagerDuty", "UiPath", "GitLab", "JFrog", "HashiCorp",
	"Miro", "Notion", "Airtable", "Asana", "Monday.com",
	"Smartsheet", "Box", "Dropbox", "Slack", "Microsoft Teams",
}

var techCompanies = []string{
	"Google", "Meta", "Amazon", "Apple", "Netflix", "Microsoft",
	"Oracle", "SAP", "Adobe", "Salesforce", "VMware", "IBM",
	"PayPal", "Square", "Adyen", "Stripe", "Plaid",
	"Shopify", "Etsy", "eBay", "Wayfair", "Chewy",
	"Twitter", "LinkedIn", "Snap", "Pinterest", "Reddit",
	"Slack", "Asana", "Monday", "Atlassian", "Zoom",
	"Palo Alto Networks", "CrowdStrike", "Okta", "Cloudflare",
	"Unity", "Roblox", "Epic Games", "Activision", "EA",
	"Coinbase", "Robinhood", "Chime", "SoFi", "Affirm",
	"Uber", "Lyft", "DoorDash", "Instacart", "Lime",
	"OpenAI", "Anthropic", "Scale AI", "Hugging Face", "Replicate",
}

var healthcareCompanies = []string{
	"Pfizer", "Moderna", "Johnson & Johnson", "Merck", "AbbVie",
	"Bristol Myers Squibb", "AstraZeneca", "Novartis", "Roche", "GSK",
	"Illumina", "Regeneron", "Vertex", "Biogen", "Amgen",
	"Gilead Sciences", "Celgene", "Genentech", "BioNTech",
	"Epic Systems", "Cerner", "Allscripts", "Athenahealth",
	"Teladoc", "Oscar Health", "Ro", "Hims & Hers", "One Medical",
	"Medtronic", "Abbott", "Stryker", "Boston Scientific", "Zimmer Biomet",
	"UnitedHealth", "Anthem", "Cigna", "Humana", "CVS Health",
}
