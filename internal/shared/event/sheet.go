package event

const SheetCreatedDestination string = "canvass_sheet_created"
const SheetCreatedConsumerAudit string = "canvass_sheet_created_audit"

const SheetUpdatedDestination string = "canvass_sheet_updated"
const SheetUpdatedConsumerAudit string = "canvass_sheet_updated_audit"

const SheetDeletedDestination string = "canvass_sheet_deleted"
const SheetDeletedConsumerAudit string = "canvass_sheet_deleted_audit"

type SheetMessage struct {
	SheetID    int64  `json:"sheet_id"`
	HouseName  string `json:"house_name"`
	Community  string `json:"community"`
	ActorEmail string `json:"actor_email"`
}

const SheetExportDestination string = "canvass_sheet_export"
const SheetExportConsumerAudit string = "canvass_sheet_export_audit"

type SheetExportMessage struct {
	ObjectKey  string `json:"object_key"`
	SheetCount int    `json:"sheet_count"`
	ActorEmail string `json:"actor_email"`
}
