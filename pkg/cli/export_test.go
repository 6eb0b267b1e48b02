package cli

var RenderSummaryForTest = renderSummary
