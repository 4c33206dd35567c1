package insight

// Every field is read from its upstream (Portuguese) key first and from the
// key this package writes second, so a normalized payload reads back unchanged.
var (
	keySentiment    = []string{"sentimentoGeral", "overallSentiment"}
	keyThemes       = []string{"principaisTemas", "mainThemes"}
	keyAudience     = []string{"fasVsHaters", "audienceSplit"}
	keyTriggers     = []string{"gatilhosEngajamento", "engagementTriggers"}
	keyRisks        = []string{"riscosReputacao", "reputationRisks"}
	keyTopComments  = []string{"topComentarios", "topComments"}
	keyPolarization = []string{"polarizacaoPublico", "polarization"}
	keySuggestions  = []string{"sugestoesAcao", "actionSuggestions"}
	keySummary      = []string{"resumoQuantitativo", "quantitativeSummary"}

	keyAudienceFans     = []string{"fas", "fans"}
	keyAudienceNeutrals = []string{"neutros", "neutrals"}
	keyAudienceHaters   = []string{"haters"}
	keyAudienceUnit     = []string{"unidade", "unit"}

	keyTriggerName   = []string{"gatilho", "trigger"}
	keyTriggerImpact = []string{"impacto", "impact"}

	keyRiskAlert    = []string{"alerta", "alert"}
	keyRiskSeverity = []string{"severidade", "severity"}

	keyPolarizationScore = []string{"score"}
	keyPolarizationLevel = []string{"nivel", "level"}

	keySummaryLikes    = []string{"likes"}
	keySummaryShares   = []string{"shares"}
	keySummaryComments = []string{"comentarios", "comments"}
	keySummaryReach    = []string{"alcanceEstimado", "estimatedReach"}

	keyCommentText      = []string{"text", "comment", "texto"}
	keyCommentLikes     = "likes"
	keyCommentSentiment = []string{"sentimento", "sentiment"}
	keyCommentTheme     = []string{"tema", "theme"}

	keyCardTitle   = "title"
	keyCardContent = []string{"content", "text"}

	keyAnalysisInsights    = "insights"
	keyAnalysisTopComments = "topComments"
	keyAnalysisLikes       = "numberOfLikes"
	keyAnalysisShares      = "shared"
	keyAnalysisComments    = "commentsCount"
)
