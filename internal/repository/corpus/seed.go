package corpus

import "github.com/execai/kbase/internal/domain"

// SeedDomains returns the built-in domain records, used when no domains file
// is configured.
func SeedDomains() []domain.Domain {
	return []domain.Domain{
		{
			ID:           "business",
			Name:         "Business Mentorship",
			Description:  "MBA-level business knowledge, frameworks, and mentorship",
			Icon:         "briefcase",
			Capabilities: []string{"strategic_advice", "business_modeling", "founder_mentorship", "case_analysis"},
		},
		{
			ID:           "finance",
			Name:         "Financial Analysis",
			Description:  "CFO-level financial reasoning and mathematical problem-solving",
			Icon:         "calculator",
			Capabilities: []string{"financial_analysis", "math_problem_solving", "statistical_reasoning"},
		},
		{
			ID:           "tech",
			Name:         "Technical Development",
			Description:  "CTO-level technical guidance and code expertise",
			Icon:         "code",
			Capabilities: []string{"code_generation", "architecture_design", "technical_review"},
		},
		{
			ID:           "legal",
			Name:         "Legal Contracts",
			Description:  "Legal contract patterns and analysis",
			Icon:         "file-text",
			Capabilities: []string{"contract_analysis", "legal_risk_assessment", "term_evaluation"},
		},
		{
			ID:           "speech",
			Name:         "Speech Recognition",
			Description:  "Voice interaction and transcription capabilities",
			Icon:         "mic",
			Capabilities: []string{"speech_recognition", "audio_processing", "language_detection"},
		},
	}
}

// SeedItems returns the built-in knowledge corpus, used when no corpus file
// is configured.
func SeedItems() []domain.KnowledgeItem {
	return []domain.KnowledgeItem{
		{
			ID:          "bm001",
			Title:       "Business Model Canvas",
			Description: "Strategic management template for developing new or documenting existing business models",
			Content: "The Business Model Canvas is a strategic management template used for developing new business models " +
				"or documenting existing ones. It offers a visual chart with elements describing a firm's value proposition, " +
				"infrastructure, customers, and finances, helping businesses align their activities by illustrating potential " +
				"trade-offs. The nine building blocks are: Customer Segments, Value Propositions, Channels, Customer " +
				"Relationships, Revenue Streams, Key Resources, Key Activities, Key Partnerships, and Cost Structure.",
			Categories:   []string{"strategy", "business_model", "planning"},
			Keywords:     []string{"business model", "canvas", "value proposition", "customer segments", "revenue streams"},
			Source:       "Harvard Business School",
			Domain:       "business",
			Capabilities: []string{"strategic_advice", "business_modeling"},
			Relevance:    0.95,
		},
		{
			ID:          "bm002",
			Title:       "Lean Canvas",
			Description: "Adaptation of Business Model Canvas for lean startups",
			Content: "Lean Canvas is a 1-page business plan template created by Ash Maurya that helps you deconstruct your " +
				"idea into its key assumptions. It's adapted from Alex Osterwalder's Business Model Canvas and optimized for " +
				"Lean Startups. It replaces elaborate business plans with a single page business model. The nine blocks are: " +
				"Problem, Solution, Key Metrics, Unique Value Proposition, Unfair Advantage, Channels, Customer Segments, " +
				"Cost Structure, and Revenue Streams. It focuses on problems, solutions, key metrics, and competitive advantages.",
			Categories:   []string{"lean_startup", "business_model", "planning"},
			Keywords:     []string{"lean", "startup", "canvas", "business model", "validation"},
			Source:       "Lean Startup corpus",
			Domain:       "business",
			Capabilities: []string{"strategic_advice", "business_modeling", "founder_mentorship"},
			Relevance:    0.85,
		},
		{
			ID:          "bm003",
			Title:       "Porter's Five Forces",
			Description: "Framework for analyzing the competitive intensity of an industry",
			Content: "Porter's Five Forces is a framework for analyzing a company's competitive environment. The five forces " +
				"are: the threat of new entrants, the bargaining power of suppliers, the bargaining power of buyers, the " +
				"threat of substitute products or services, and the intensity of competitive rivalry. Together they determine " +
				"industry profitability and inform strategic positioning, pricing power, and barriers to entry.",
			Categories:   []string{"strategy", "competitive_analysis"},
			Keywords:     []string{"five forces", "competition", "industry analysis", "rivalry", "barriers to entry"},
			Source:       "Harvard Business Review",
			Domain:       "business",
			Capabilities: []string{"strategic_advice", "case_analysis"},
			Relevance:    0.8,
		},
		{
			ID:          "fin001",
			Title:       "Unit Economics",
			Description: "Per-unit revenue and cost analysis for venture viability",
			Content: "Unit economics measure the direct revenues and costs associated with a single unit of a business " +
				"model, typically one customer. The core quantities are customer acquisition cost, lifetime value, gross " +
				"margin per customer, and payback period. A venture is structurally viable when lifetime value exceeds " +
				"acquisition cost by a healthy multiple, commonly three or more, and the payback period fits within " +
				"available working capital.",
			Categories:   []string{"finance", "metrics"},
			Keywords:     []string{"unit economics", "cac", "ltv", "payback period", "gross margin"},
			Source:       "SaaS finance corpus",
			Domain:       "finance",
			Capabilities: []string{"financial_analysis", "statistical_reasoning"},
			Relevance:    0.9,
		},
		{
			ID:          "fin002",
			Title:       "Discounted Cash Flow Valuation",
			Description: "Valuation by discounting projected future cash flows",
			Content: "Discounted cash flow valuation estimates the value of an investment from its expected future cash " +
				"flows, discounted back to present value at a rate reflecting the risk of those flows. The method requires " +
				"projecting free cash flow over an explicit horizon, choosing a discount rate such as the weighted average " +
				"cost of capital, and estimating a terminal value. Sensitivity analysis on growth and discount assumptions " +
				"is essential because small input changes move the valuation materially.",
			Categories:   []string{"finance", "valuation"},
			Keywords:     []string{"dcf", "valuation", "discount rate", "cash flow", "terminal value"},
			Source:       "Corporate finance corpus",
			Domain:       "finance",
			Capabilities: []string{"financial_analysis", "math_problem_solving"},
			Relevance:    0.85,
		},
		{
			ID:          "tech001",
			Title:       "Monolith First",
			Description: "Architecture guidance for early-stage products",
			Content: "Early-stage products are usually better served by a well-structured monolith than by microservices. " +
				"A monolith keeps deployment, debugging, and refactoring cheap while the domain boundaries are still being " +
				"discovered. Microservices pay off when independent scaling, independent deployment cadence, or team autonomy " +
				"across stable boundaries genuinely matter, and they charge a permanent tax in distributed-systems complexity, " +
				"observability, and operational overhead.",
			Categories:   []string{"architecture", "engineering"},
			Keywords:     []string{"monolith", "microservices", "architecture", "scaling", "technical debt"},
			Source:       "Software architecture corpus",
			Domain:       "tech",
			Capabilities: []string{"architecture_design", "technical_review"},
			Relevance:    0.8,
		},
		{
			ID:          "legal001",
			Title:       "SAFE Agreements",
			Description: "Simple Agreement for Future Equity fundamentals",
			Content: "A SAFE, or Simple Agreement for Future Equity, is an instrument that converts an investment into " +
				"equity at a future priced round. Key terms are the valuation cap, which sets a maximum conversion price, " +
				"and the discount rate applied to the next round's price. SAFEs defer valuation negotiation, carry no " +
				"interest or maturity date unlike convertible notes, and their stacking effect on dilution should be " +
				"modeled before each new issuance.",
			Categories:   []string{"legal", "fundraising_instruments"},
			Keywords:     []string{"safe", "convertible", "valuation cap", "discount", "equity"},
			Source:       "Y Combinator legal corpus",
			Domain:       "legal",
			Capabilities: []string{"contract_analysis", "term_evaluation"},
			Relevance:    0.85,
		},
		{
			ID:          "speech001",
			Title:       "Voice Interface Design",
			Description: "Principles for transcription-driven product features",
			Content: "Voice interfaces depend on robust speech recognition followed by language detection and intent " +
				"extraction. Transcription accuracy degrades with domain jargon, accents, and background noise, so " +
				"production voice features need confidence thresholds, confirmation prompts for destructive actions, and " +
				"graceful fallback to text input. Latency budgets matter: users abandon voice interactions that take " +
				"longer than speaking would have.",
			Categories:   []string{"speech", "product"},
			Keywords:     []string{"speech recognition", "transcription", "voice", "audio", "language detection"},
			Source:       "Speech systems corpus",
			Domain:       "speech",
			Capabilities: []string{"speech_recognition", "audio_processing", "language_detection"},
			Relevance:    0.7,
		},
	}
}
