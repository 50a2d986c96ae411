package survey

// Column names of the survey export. The schema is fixed: the dataset
// is a one-off export from the response grid, not a user upload.
const (
	ColTopOfMindBrand   = "A1_Top_of_Mind_Brand"
	ColStoppedUsing     = "A3_Networks_Stopped_Using"
	ColPrimaryNetwork   = "A5_Primary_Mobile_Network"
	ColChoiceFactors    = "A6_Factors_Influencing_Choice"
	ColTenure           = "A9_How_Long_Primary_Network"
	ColMostLiked        = "A11_Most_Liked_Feature"
	ColMostDisliked     = "A12_Most_Disliked_Feature"
	ColDesiredServices  = "A22_Desired_Value_Added_Services"
	ColImprovementAreas = "A24_Improvement_Areas_Primary_Network"
	ColExcelAreas       = "A25_Excel_Areas_Primary_Network"
	ColScoreOverall     = "A36A_Experience_overall_experience"
	ColScoreService     = "A36B_Experience_Customer_Service"
	ColScoreComms       = "A36C_Experience_communication_channels"
	ColScorePricing     = "A36D_Experience_pricing"
	ColAge              = "D1_Age"
	ColLocation         = "D3_Location_Botswana"
	ColEmployment       = "D5_Employment_Status"
	ColIncome           = "D7_Monthly_Income_Allowance"
)

// ScoreColumns lists the four numeric satisfaction dimensions in
// presentation order.
func ScoreColumns() []string {
	return []string{ColScoreOverall, ColScoreService, ColScoreComms, ColScorePricing}
}
