package insights

// Topic labels for the static advice tables.
const (
	TopicBusinessModel      = "business_model"
	TopicFundraising        = "fundraising"
	TopicProductDevelopment = "product_development"
	TopicTeamBuilding       = "team_building"
	TopicDAOGovernance      = "dao_governance"
	TopicGrowthStrategy     = "growth_strategy"
)

// topicKeywords maps naive substring groups to topics. Order matters: the
// first matching group wins, and TopicBusinessModel is the fallback.
var topicKeywords = []struct {
	topic    string
	keywords []string
}{
	{TopicFundraising, []string{"fundrais", "investor", "capital", "money", "funding"}},
	{TopicProductDevelopment, []string{"product", "mvp", "develop", "feature"}},
	{TopicTeamBuilding, []string{"team", "hire", "talent", "employee"}},
	{TopicDAOGovernance, []string{"dao", "governance", "token", "blockchain"}},
	{TopicGrowthStrategy, []string{"growth", "scale", "market", "customer"}},
}

var insightsByTopic = map[string][]string{
	TopicBusinessModel: {
		"When designing your business model, focus on creating a sustainable competitive advantage that's difficult for competitors to replicate. This might come from proprietary technology, network effects, or unique partnerships.",
		"The most resilient business models have multiple revenue streams that complement each other and create a flywheel effect. Consider how each revenue source can strengthen the others.",
		"Don't just copy existing business models in your industry. The most innovative companies often combine elements from different industries to create something unique.",
		"Your business model should evolve as you grow. What works at the seed stage may not be optimal at Series A or beyond. Plan for this evolution from the beginning.",
	},
	TopicFundraising: {
		"Raise for milestones, not for runway. Investors back a plan that converts capital into a specific, measurable step-change in the business.",
		"The best fundraising processes are run like sales pipelines: parallel conversations, clear stages, and a forcing function that creates urgency.",
		"Dilution compounds. Model your ownership through the next two rounds before accepting terms on this one.",
		"Non-dilutive capital — grants, revenue-based financing, and SBA loans — is often overlooked by first-time founders and can extend runway without giving up control.",
	},
	TopicProductDevelopment: {
		"Ship the smallest thing that tests your riskiest assumption. An MVP is an experiment, not a smaller version of the final product.",
		"Talk to users before, during, and after every build cycle. The cost of building the wrong feature is always higher than the cost of one more conversation.",
		"Feature requests describe symptoms, not causes. Dig for the underlying job the user is hiring your product to do.",
		"Technical debt is a financing instrument: useful when it buys you learning speed, dangerous when the interest payments exceed your velocity.",
	},
	TopicTeamBuilding: {
		"Hire for slope, not intercept. Early-stage companies change too fast for today's skills to matter more than the rate of learning.",
		"Your first ten hires set the culture more durably than any values document. Treat each one as a founding decision.",
		"Clear ownership beats consensus. Every critical function should have exactly one person who loses sleep over it.",
		"Compensation mistakes are expensive to fix later. Set bands early and be transparent about how equity is allocated.",
	},
	TopicDAOGovernance: {
		"Token governance only works when voting power aligns with long-term interest. Guard against short-horizon holders steering long-horizon decisions.",
		"Start with a minimal governance surface: a treasury, a proposal process, and an execution mechanism. Complexity added early is complexity you govern forever.",
		"Legal wrappers matter. A DAO without a recognized legal structure exposes every contributor to unlimited liability in most jurisdictions.",
		"On-chain transparency is a feature and a constraint: design treasury policy assuming every transaction will be scrutinized publicly.",
	},
	TopicGrowthStrategy: {
		"Sustainable growth comes from a loop, not a funnel: each cohort of customers should make acquiring the next cohort cheaper or faster.",
		"Before scaling spend, prove retention. Pouring acquisition into a leaky product is the most expensive mistake in growth.",
		"Expand from a position of monopoly in a niche. Dominating a small market beats fighting for scraps in a large one.",
		"Pricing is the most neglected growth lever: a 1% improvement in price typically moves profit more than a 1% improvement in volume or cost.",
	},
}

var nextStepsByTopic = map[string][]string{
	TopicBusinessModel: {
		"Let's map out your current business model using the Business Model Canvas framework, then identify areas for innovation or optimization.",
		"I suggest conducting a competitive analysis to identify gaps in the market that your business model could uniquely address.",
		"Consider running small experiments to test key assumptions in your business model before committing significant resources.",
		"Let's develop metrics to track the performance of each component of your business model so you can make data-driven refinements.",
	},
	TopicFundraising: {
		"Let's build a milestone-based fundraising plan: how much you need, what it proves, and who the right investors are for this stage.",
		"I suggest drafting a one-page investment memo before the deck — it forces clarity on the numbers investors will scrutinize first.",
		"Consider assembling a target list of 30-50 investors segmented by thesis fit, and design a two-week parallel outreach sprint.",
		"Let's review your cap table and model dilution across the next two rounds before you commit to terms.",
	},
	TopicProductDevelopment: {
		"Let's write down your three riskiest product assumptions and design the cheapest experiment that could falsify each one.",
		"I suggest scheduling five user interviews this week focused on the problem, not your solution.",
		"Consider defining a single activation metric for your MVP so every build decision can be traced to moving it.",
		"Let's scope a two-week build that ships something testable to real users, even if it's embarrassingly small.",
	},
	TopicTeamBuilding: {
		"Let's write the scorecard for your next hire: the outcomes they own, not the skills they list.",
		"I suggest mapping the founding team's gaps honestly — then deciding which to hire for, which to contract, and which to learn.",
		"Consider setting up a lightweight hiring process now: structured interviews and reference calls prevent expensive mistakes later.",
		"Let's draft your equity and compensation bands before the next offer, so every grant follows a principle instead of a negotiation.",
	},
	TopicDAOGovernance: {
		"Let's sketch your governance surface: what decisions are on-chain, what stays with the founding team, and how that shifts over time.",
		"I suggest consulting counsel on a legal wrapper for the DAO before the treasury holds meaningful value.",
		"Consider drafting the first three governance proposals yourself — they set the template every later proposal will follow.",
		"Let's define the token distribution schedule and vesting terms with long-term alignment as the explicit design goal.",
	},
	TopicGrowthStrategy: {
		"Let's identify your growth loop: trace how one satisfied customer leads mechanically to the next one.",
		"I suggest auditing retention cohorts before touching acquisition spend — the data will tell us if the bucket leaks.",
		"Consider a pricing review: interview ten customers about perceived value before adjusting a single number.",
		"Let's pick the one channel where your early adopters already gather and concentrate the next quarter's effort there.",
	},
}
