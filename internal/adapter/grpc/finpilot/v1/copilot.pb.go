// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: finpilot/v1/copilot.proto

package finpilotv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type BuildContextRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BuildContextRequest) Reset() {
	*x = BuildContextRequest{}
	mi := &file_finpilot_v1_copilot_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BuildContextRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BuildContextRequest) ProtoMessage() {}

func (x *BuildContextRequest) ProtoReflect() protoreflect.Message {
	mi := &file_finpilot_v1_copilot_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BuildContextRequest.ProtoReflect.Descriptor instead.
func (*BuildContextRequest) Descriptor() ([]byte, []int) {
	return file_finpilot_v1_copilot_proto_rawDescGZIP(), []int{0}
}

func (x *BuildContextRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type BuildContextResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Context       *FinancialContext      `protobuf:"bytes,1,opt,name=context,proto3" json:"context,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BuildContextResponse) Reset() {
	*x = BuildContextResponse{}
	mi := &file_finpilot_v1_copilot_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BuildContextResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BuildContextResponse) ProtoMessage() {}

func (x *BuildContextResponse) ProtoReflect() protoreflect.Message {
	mi := &file_finpilot_v1_copilot_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BuildContextResponse.ProtoReflect.Descriptor instead.
func (*BuildContextResponse) Descriptor() ([]byte, []int) {
	return file_finpilot_v1_copilot_proto_rawDescGZIP(), []int{1}
}

func (x *BuildContextResponse) GetContext() *FinancialContext {
	if x != nil {
		return x.Context
	}
	return nil
}

type ExecuteCommandRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Intent        string                 `protobuf:"bytes,2,opt,name=intent,proto3" json:"intent,omitempty"`
	OriginalText  string                 `protobuf:"bytes,3,opt,name=original_text,json=originalText,proto3" json:"original_text,omitempty"`
	Entities      *CommandEntities       `protobuf:"bytes,4,opt,name=entities,proto3" json:"entities,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExecuteCommandRequest) Reset() {
	*x = ExecuteCommandRequest{}
	mi := &file_finpilot_v1_copilot_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExecuteCommandRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExecuteCommandRequest) ProtoMessage() {}

func (x *ExecuteCommandRequest) ProtoReflect() protoreflect.Message {
	mi := &file_finpilot_v1_copilot_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExecuteCommandRequest.ProtoReflect.Descriptor instead.
func (*ExecuteCommandRequest) Descriptor() ([]byte, []int) {
	return file_finpilot_v1_copilot_proto_rawDescGZIP(), []int{2}
}

func (x *ExecuteCommandRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *ExecuteCommandRequest) GetIntent() string {
	if x != nil {
		return x.Intent
	}
	return ""
}

func (x *ExecuteCommandRequest) GetOriginalText() string {
	if x != nil {
		return x.OriginalText
	}
	return ""
}

func (x *ExecuteCommandRequest) GetEntities() *CommandEntities {
	if x != nil {
		return x.Entities
	}
	return nil
}

// CommandEntities carries the values the NLU layer extracted. Absent values
// are empty strings / zero; amounts travel as decimal strings.
type CommandEntities struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Valor         string                 `protobuf:"bytes,1,opt,name=valor,proto3" json:"valor,omitempty"`
	Categoria     string                 `protobuf:"bytes,2,opt,name=categoria,proto3" json:"categoria,omitempty"`
	Conta         string                 `protobuf:"bytes,3,opt,name=conta,proto3" json:"conta,omitempty"`
	ContaDestino  string                 `protobuf:"bytes,4,opt,name=conta_destino,json=contaDestino,proto3" json:"conta_destino,omitempty"`
	Data          *timestamppb.Timestamp `protobuf:"bytes,5,opt,name=data,proto3" json:"data,omitempty"`
	Descricao     string                 `protobuf:"bytes,6,opt,name=descricao,proto3" json:"descricao,omitempty"`
	Parcelas      int32                  `protobuf:"varint,7,opt,name=parcelas,proto3" json:"parcelas,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CommandEntities) Reset() {
	*x = CommandEntities{}
	mi := &file_finpilot_v1_copilot_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CommandEntities) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CommandEntities) ProtoMessage() {}

func (x *CommandEntities) ProtoReflect() protoreflect.Message {
	mi := &file_finpilot_v1_copilot_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CommandEntities.ProtoReflect.Descriptor instead.
func (*CommandEntities) Descriptor() ([]byte, []int) {
	return file_finpilot_v1_copilot_proto_rawDescGZIP(), []int{3}
}

func (x *CommandEntities) GetValor() string {
	if x != nil {
		return x.Valor
	}
	return ""
}

func (x *CommandEntities) GetCategoria() string {
	if x != nil {
		return x.Categoria
	}
	return ""
}

func (x *CommandEntities) GetConta() string {
	if x != nil {
		return x.Conta
	}
	return ""
}

func (x *CommandEntities) GetContaDestino() string {
	if x != nil {
		return x.ContaDestino
	}
	return ""
}

func (x *CommandEntities) GetData() *timestamppb.Timestamp {
	if x != nil {
		return x.Data
	}
	return nil
}

func (x *CommandEntities) GetDescricao() string {
	if x != nil {
		return x.Descricao
	}
	return ""
}

func (x *CommandEntities) GetParcelas() int32 {
	if x != nil {
		return x.Parcelas
	}
	return 0
}

type ExecuteCommandResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// operation_success, clarification_needed or error
	Status        string   `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	Message       string   `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	Impact        string   `protobuf:"bytes,3,opt,name=impact,proto3" json:"impact,omitempty"`
	Suggestions   []string `protobuf:"bytes,4,rep,name=suggestions,proto3" json:"suggestions,omitempty"`
	OperationId   string   `protobuf:"bytes,5,opt,name=operation_id,json=operationId,proto3" json:"operation_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExecuteCommandResponse) Reset() {
	*x = ExecuteCommandResponse{}
	mi := &file_finpilot_v1_copilot_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExecuteCommandResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExecuteCommandResponse) ProtoMessage() {}

func (x *ExecuteCommandResponse) ProtoReflect() protoreflect.Message {
	mi := &file_finpilot_v1_copilot_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExecuteCommandResponse.ProtoReflect.Descriptor instead.
func (*ExecuteCommandResponse) Descriptor() ([]byte, []int) {
	return file_finpilot_v1_copilot_proto_rawDescGZIP(), []int{4}
}

func (x *ExecuteCommandResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ExecuteCommandResponse) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *ExecuteCommandResponse) GetImpact() string {
	if x != nil {
		return x.Impact
	}
	return ""
}

func (x *ExecuteCommandResponse) GetSuggestions() []string {
	if x != nil {
		return x.Suggestions
	}
	return nil
}

func (x *ExecuteCommandResponse) GetOperationId() string {
	if x != nil {
		return x.OperationId
	}
	return ""
}

type RollbackRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OperationId   string                 `protobuf:"bytes,1,opt,name=operation_id,json=operationId,proto3" json:"operation_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RollbackRequest) Reset() {
	*x = RollbackRequest{}
	mi := &file_finpilot_v1_copilot_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RollbackRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RollbackRequest) ProtoMessage() {}

func (x *RollbackRequest) ProtoReflect() protoreflect.Message {
	mi := &file_finpilot_v1_copilot_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RollbackRequest.ProtoReflect.Descriptor instead.
func (*RollbackRequest) Descriptor() ([]byte, []int) {
	return file_finpilot_v1_copilot_proto_rawDescGZIP(), []int{5}
}

func (x *RollbackRequest) GetOperationId() string {
	if x != nil {
		return x.OperationId
	}
	return ""
}

type RollbackResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RollbackResponse) Reset() {
	*x = RollbackResponse{}
	mi := &file_finpilot_v1_copilot_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RollbackResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RollbackResponse) ProtoMessage() {}

func (x *RollbackResponse) ProtoReflect() protoreflect.Message {
	mi := &file_finpilot_v1_copilot_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RollbackResponse.ProtoReflect.Descriptor instead.
func (*RollbackResponse) Descriptor() ([]byte, []int) {
	return file_finpilot_v1_copilot_proto_rawDescGZIP(), []int{6}
}

type SearchRelevantRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Query         string                 `protobuf:"bytes,2,opt,name=query,proto3" json:"query,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SearchRelevantRequest) Reset() {
	*x = SearchRelevantRequest{}
	mi := &file_finpilot_v1_copilot_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SearchRelevantRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SearchRelevantRequest) ProtoMessage() {}

func (x *SearchRelevantRequest) ProtoReflect() protoreflect.Message {
	mi := &file_finpilot_v1_copilot_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SearchRelevantRequest.ProtoReflect.Descriptor instead.
func (*SearchRelevantRequest) Descriptor() ([]byte, []int) {
	return file_finpilot_v1_copilot_proto_rawDescGZIP(), []int{7}
}

func (x *SearchRelevantRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *SearchRelevantRequest) GetQuery() string {
	if x != nil {
		return x.Query
	}
	return ""
}

type SearchRelevantResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Transactions  []*Transaction         `protobuf:"bytes,1,rep,name=transactions,proto3" json:"transactions,omitempty"`
	Accounts      []*Account             `protobuf:"bytes,2,rep,name=accounts,proto3" json:"accounts,omitempty"`
	Categories    []*Category            `protobuf:"bytes,3,rep,name=categories,proto3" json:"categories,omitempty"`
	Goals         []*Goal                `protobuf:"bytes,4,rep,name=goals,proto3" json:"goals,omitempty"`
	Budgets       []*Budget              `protobuf:"bytes,5,rep,name=budgets,proto3" json:"budgets,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SearchRelevantResponse) Reset() {
	*x = SearchRelevantResponse{}
	mi := &file_finpilot_v1_copilot_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SearchRelevantResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SearchRelevantResponse) ProtoMessage() {}

func (x *SearchRelevantResponse) ProtoReflect() protoreflect.Message {
	mi := &file_finpilot_v1_copilot_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SearchRelevantResponse.ProtoReflect.Descriptor instead.
func (*SearchRelevantResponse) Descriptor() ([]byte, []int) {
	return file_finpilot_v1_copilot_proto_rawDescGZIP(), []int{8}
}

func (x *SearchRelevantResponse) GetTransactions() []*Transaction {
	if x != nil {
		return x.Transactions
	}
	return nil
}

func (x *SearchRelevantResponse) GetAccounts() []*Account {
	if x != nil {
		return x.Accounts
	}
	return nil
}

func (x *SearchRelevantResponse) GetCategories() []*Category {
	if x != nil {
		return x.Categories
	}
	return nil
}

func (x *SearchRelevantResponse) GetGoals() []*Goal {
	if x != nil {
		return x.Goals
	}
	return nil
}

func (x *SearchRelevantResponse) GetBudgets() []*Budget {
	if x != nil {
		return x.Budgets
	}
	return nil
}

type FinancialContext struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	BuiltAt       *timestamppb.Timestamp `protobuf:"bytes,2,opt,name=built_at,json=builtAt,proto3" json:"built_at,omitempty"`
	Patrimony     *Patrimony             `protobuf:"bytes,3,opt,name=patrimony,proto3" json:"patrimony,omitempty"`
	Indicators    *Indicators            `protobuf:"bytes,4,opt,name=indicators,proto3" json:"indicators,omitempty"`
	History       *History               `protobuf:"bytes,5,opt,name=history,proto3" json:"history,omitempty"`
	Planning      *Planning              `protobuf:"bytes,6,opt,name=planning,proto3" json:"planning,omitempty"`
	Conversation  *Conversation          `protobuf:"bytes,7,opt,name=conversation,proto3" json:"conversation,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FinancialContext) Reset() {
	*x = FinancialContext{}
	mi := &file_finpilot_v1_copilot_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FinancialContext) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FinancialContext) ProtoMessage() {}

func (x *FinancialContext) ProtoReflect() protoreflect.Message {
	mi := &file_finpilot_v1_copilot_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FinancialContext.ProtoReflect.Descriptor instead.
func (*FinancialContext) Descriptor() ([]byte, []int) {
	return file_finpilot_v1_copilot_proto_rawDescGZIP(), []int{9}
}

func (x *FinancialContext) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *FinancialContext) GetBuiltAt() *timestamppb.Timestamp {
	if x != nil {
		return x.BuiltAt
	}
	return nil
}

func (x *FinancialContext) GetPatrimony() *Patrimony {
	if x != nil {
		return x.Patrimony
	}
	return nil
}

func (x *FinancialContext) GetIndicators() *Indicators {
	if x != nil {
		return x.Indicators
	}
	return nil
}

func (x *FinancialContext) GetHistory() *History {
	if x != nil {
		return x.History
	}
	return nil
}

func (x *FinancialContext) GetPlanning() *Planning {
	if x != nil {
		return x.Planning
	}
	return nil
}

func (x *FinancialContext) GetConversation() *Conversation {
	if x != nil {
		return x.Conversation
	}
	return nil
}

type Patrimony struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	TotalBalance     string                 `protobuf:"bytes,1,opt,name=total_balance,json=totalBalance,proto3" json:"total_balance,omitempty"`
	ProjectedBalance string                 `protobuf:"bytes,2,opt,name=projected_balance,json=projectedBalance,proto3" json:"projected_balance,omitempty"`
	Accounts         []*AccountBalance      `protobuf:"bytes,3,rep,name=accounts,proto3" json:"accounts,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *Patrimony) Reset() {
	*x = Patrimony{}
	mi := &file_finpilot_v1_copilot_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Patrimony) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Patrimony) ProtoMessage() {}

func (x *Patrimony) ProtoReflect() protoreflect.Message {
	mi := &file_finpilot_v1_copilot_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Patrimony.ProtoReflect.Descriptor instead.
func (*Patrimony) Descriptor() ([]byte, []int) {
	return file_finpilot_v1_copilot_proto_rawDescGZIP(), []int{10}
}

func (x *Patrimony) GetTotalBalance() string {
	if x != nil {
		return x.TotalBalance
	}
	return ""
}

func (x *Patrimony) GetProjectedBalance() string {
	if x != nil {
		return x.ProjectedBalance
	}
	return ""
}

func (x *Patrimony) GetAccounts() []*AccountBalance {
	if x != nil {
		return x.Accounts
	}
	return nil
}

type AccountBalance struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AccountId     string                 `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Balance       string                 `protobuf:"bytes,3,opt,name=balance,proto3" json:"balance,omitempty"`
	IsDefault     bool                   `protobuf:"varint,4,opt,name=is_default,json=isDefault,proto3" json:"is_default,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AccountBalance) Reset() {
	*x = AccountBalance{}
	mi := &file_finpilot_v1_copilot_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AccountBalance) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AccountBalance) ProtoMessage() {}

func (x *AccountBalance) ProtoReflect() protoreflect.Message {
	mi := &file_finpilot_v1_copilot_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AccountBalance.ProtoReflect.Descriptor instead.
func (*AccountBalance) Descriptor() ([]byte, []int) {
	return file_finpilot_v1_copilot_proto_rawDescGZIP(), []int{11}
}

func (x *AccountBalance) GetAccountId() string {
	if x != nil {
		return x.AccountId
	}
	return ""
}

func (x *AccountBalance) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *AccountBalance) GetBalance() string {
	if x != nil {
		return x.Balance
	}
	return ""
}

func (x *AccountBalance) GetIsDefault() bool {
	if x != nil {
		return x.IsDefault
	}
	return false
}

type Indicators struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	MonthIncome     string                 `protobuf:"bytes,1,opt,name=month_income,json=monthIncome,proto3" json:"month_income,omitempty"`
	MonthExpense    string                 `protobuf:"bytes,2,opt,name=month_expense,json=monthExpense,proto3" json:"month_expense,omitempty"`
	NetFlow         string                 `protobuf:"bytes,3,opt,name=net_flow,json=netFlow,proto3" json:"net_flow,omitempty"`
	Health          *HealthScore           `protobuf:"bytes,4,opt,name=health,proto3" json:"health,omitempty"`
	Trends          []*TrendRecord         `protobuf:"bytes,5,rep,name=trends,proto3" json:"trends,omitempty"`
	MonthComparison *MonthComparison       `protobuf:"bytes,6,opt,name=month_comparison,json=monthComparison,proto3" json:"month_comparison,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *Indicators) Reset() {
	*x = Indicators{}
	mi := &file_finpilot_v1_copilot_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Indicators) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Indicators) ProtoMessage() {}

func (x *Indicators) ProtoReflect() protoreflect.Message {
	mi := &file_finpilot_v1_copilot_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Indicators.ProtoReflect.Descriptor instead.
func (*Indicators) Descriptor() ([]byte, []int) {
	return file_finpilot_v1_copilot_proto_rawDescGZIP(), []int{12}
}

func (x *Indicators) GetMonthIncome() string {
	if x != nil {
		return x.MonthIncome
	}
	return ""
}

func (x *Indicators) GetMonthExpense() string {
	if x != nil {
		return x.MonthExpense
	}
	return ""
}

func (x *Indicators) GetNetFlow() string {
	if x != nil {
		return x.NetFlow
	}
	return ""
}

func (x *Indicators) GetHealth() *HealthScore {
	if x != nil {
		return x.Health
	}
	return nil
}

func (x *Indicators) GetTrends() []*TrendRecord {
	if x != nil {
		return x.Trends
	}
	return nil
}

func (x *Indicators) GetMonthComparison() *MonthComparison {
	if x != nil {
		return x.MonthComparison
	}
	return nil
}

type HealthScore struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Score int32                  `protobuf:"varint,1,opt,name=score,proto3" json:"score,omitempty"`
	// excelente, boa, moderada or preocupante
	Level           string   `protobuf:"bytes,2,opt,name=level,proto3" json:"level,omitempty"`
	Factors         []string `protobuf:"bytes,3,rep,name=factors,proto3" json:"factors,omitempty"`
	Recommendations []string `protobuf:"bytes,4,rep,name=recommendations,proto3" json:"recommendations,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *HealthScore) Reset() {
	*x = HealthScore{}
	mi := &file_finpilot_v1_copilot_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *HealthScore) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*HealthScore) ProtoMessage() {}

func (x *HealthScore) ProtoReflect() protoreflect.Message {
	mi := &file_finpilot_v1_copilot_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use HealthScore.ProtoReflect.Descriptor instead.
func (*HealthScore) Descriptor() ([]byte, []int) {
	return file_finpilot_v1_copilot_proto_rawDescGZIP(), []int{13}
}

func (x *HealthScore) GetScore() int32 {
	if x != nil {
		return x.Score
	}
	return 0
}

func (x *HealthScore) GetLevel() string {
	if x != nil {
		return x.Level
	}
	return ""
}

func (x *HealthScore) GetFactors() []string {
	if x != nil {
		return x.Factors
	}
	return nil
}

func (x *HealthScore) GetRecommendations() []string {
	if x != nil {
		return x.Recommendations
	}
	return nil
}

type TrendRecord struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	CategoryId         string                 `protobuf:"bytes,1,opt,name=category_id,json=categoryId,proto3" json:"category_id,omitempty"`
	CategoryName       string                 `protobuf:"bytes,2,opt,name=category_name,json=categoryName,proto3" json:"category_name,omitempty"`
	MeanMonthlyAmount  string                 `protobuf:"bytes,3,opt,name=mean_monthly_amount,json=meanMonthlyAmount,proto3" json:"mean_monthly_amount,omitempty"`
	CurrentMonthAmount string                 `protobuf:"bytes,4,opt,name=current_month_amount,json=currentMonthAmount,proto3" json:"current_month_amount,omitempty"`
	PercentDeviation   float64                `protobuf:"fixed64,5,opt,name=percent_deviation,json=percentDeviation,proto3" json:"percent_deviation,omitempty"`
	// crescente, decrescente or estavel
	Classification string `protobuf:"bytes,6,opt,name=classification,proto3" json:"classification,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *TrendRecord) Reset() {
	*x = TrendRecord{}
	mi := &file_finpilot_v1_copilot_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TrendRecord) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TrendRecord) ProtoMessage() {}

func (x *TrendRecord) ProtoReflect() protoreflect.Message {
	mi := &file_finpilot_v1_copilot_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TrendRecord.ProtoReflect.Descriptor instead.
func (*TrendRecord) Descriptor() ([]byte, []int) {
	return file_finpilot_v1_copilot_proto_rawDescGZIP(), []int{14}
}

func (x *TrendRecord) GetCategoryId() string {
	if x != nil {
		return x.CategoryId
	}
	return ""
}

func (x *TrendRecord) GetCategoryName() string {
	if x != nil {
		return x.CategoryName
	}
	return ""
}

func (x *TrendRecord) GetMeanMonthlyAmount() string {
	if x != nil {
		return x.MeanMonthlyAmount
	}
	return ""
}

func (x *TrendRecord) GetCurrentMonthAmount() string {
	if x != nil {
		return x.CurrentMonthAmount
	}
	return ""
}

func (x *TrendRecord) GetPercentDeviation() float64 {
	if x != nil {
		return x.PercentDeviation
	}
	return 0
}

func (x *TrendRecord) GetClassification() string {
	if x != nil {
		return x.Classification
	}
	return ""
}

type MonthComparison struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	CurrentIncome    string                 `protobuf:"bytes,1,opt,name=current_income,json=currentIncome,proto3" json:"current_income,omitempty"`
	CurrentExpense   string                 `protobuf:"bytes,2,opt,name=current_expense,json=currentExpense,proto3" json:"current_expense,omitempty"`
	PreviousIncome   string                 `protobuf:"bytes,3,opt,name=previous_income,json=previousIncome,proto3" json:"previous_income,omitempty"`
	PreviousExpense  string                 `protobuf:"bytes,4,opt,name=previous_expense,json=previousExpense,proto3" json:"previous_expense,omitempty"`
	IncomeChangePct  float64                `protobuf:"fixed64,5,opt,name=income_change_pct,json=incomeChangePct,proto3" json:"income_change_pct,omitempty"`
	ExpenseChangePct float64                `protobuf:"fixed64,6,opt,name=expense_change_pct,json=expenseChangePct,proto3" json:"expense_change_pct,omitempty"`
	SavingsChangePct float64                `protobuf:"fixed64,7,opt,name=savings_change_pct,json=savingsChangePct,proto3" json:"savings_change_pct,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *MonthComparison) Reset() {
	*x = MonthComparison{}
	mi := &file_finpilot_v1_copilot_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MonthComparison) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MonthComparison) ProtoMessage() {}

func (x *MonthComparison) ProtoReflect() protoreflect.Message {
	mi := &file_finpilot_v1_copilot_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MonthComparison.ProtoReflect.Descriptor instead.
func (*MonthComparison) Descriptor() ([]byte, []int) {
	return file_finpilot_v1_copilot_proto_rawDescGZIP(), []int{15}
}

func (x *MonthComparison) GetCurrentIncome() string {
	if x != nil {
		return x.CurrentIncome
	}
	return ""
}

func (x *MonthComparison) GetCurrentExpense() string {
	if x != nil {
		return x.CurrentExpense
	}
	return ""
}

func (x *MonthComparison) GetPreviousIncome() string {
	if x != nil {
		return x.PreviousIncome
	}
	return ""
}

func (x *MonthComparison) GetPreviousExpense() string {
	if x != nil {
		return x.PreviousExpense
	}
	return ""
}

func (x *MonthComparison) GetIncomeChangePct() float64 {
	if x != nil {
		return x.IncomeChangePct
	}
	return 0
}

func (x *MonthComparison) GetExpenseChangePct() float64 {
	if x != nil {
		return x.ExpenseChangePct
	}
	return 0
}

func (x *MonthComparison) GetSavingsChangePct() float64 {
	if x != nil {
		return x.SavingsChangePct
	}
	return 0
}

type History struct {
	state               protoimpl.MessageState `protogen:"open.v1"`
	RecentTransactions  []*Transaction         `protobuf:"bytes,1,rep,name=recent_transactions,json=recentTransactions,proto3" json:"recent_transactions,omitempty"`
	PreferredCategories []string               `protobuf:"bytes,2,rep,name=preferred_categories,json=preferredCategories,proto3" json:"preferred_categories,omitempty"`
	TopCategories       []string               `protobuf:"bytes,3,rep,name=top_categories,json=topCategories,proto3" json:"top_categories,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *History) Reset() {
	*x = History{}
	mi := &file_finpilot_v1_copilot_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *History) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*History) ProtoMessage() {}

func (x *History) ProtoReflect() protoreflect.Message {
	mi := &file_finpilot_v1_copilot_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use History.ProtoReflect.Descriptor instead.
func (*History) Descriptor() ([]byte, []int) {
	return file_finpilot_v1_copilot_proto_rawDescGZIP(), []int{16}
}

func (x *History) GetRecentTransactions() []*Transaction {
	if x != nil {
		return x.RecentTransactions
	}
	return nil
}

func (x *History) GetPreferredCategories() []string {
	if x != nil {
		return x.PreferredCategories
	}
	return nil
}

func (x *History) GetTopCategories() []string {
	if x != nil {
		return x.TopCategories
	}
	return nil
}

type Planning struct {
	state             protoimpl.MessageState  `protogen:"open.v1"`
	UpcomingScheduled []*ScheduledTransaction `protobuf:"bytes,1,rep,name=upcoming_scheduled,json=upcomingScheduled,proto3" json:"upcoming_scheduled,omitempty"`
	ActiveGoals       []*Goal                 `protobuf:"bytes,2,rep,name=active_goals,json=activeGoals,proto3" json:"active_goals,omitempty"`
	ActiveBudgets     []*Budget               `protobuf:"bytes,3,rep,name=active_budgets,json=activeBudgets,proto3" json:"active_budgets,omitempty"`
	Projections       []*MonthProjection      `protobuf:"bytes,4,rep,name=projections,proto3" json:"projections,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *Planning) Reset() {
	*x = Planning{}
	mi := &file_finpilot_v1_copilot_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Planning) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Planning) ProtoMessage() {}

func (x *Planning) ProtoReflect() protoreflect.Message {
	mi := &file_finpilot_v1_copilot_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Planning.ProtoReflect.Descriptor instead.
func (*Planning) Descriptor() ([]byte, []int) {
	return file_finpilot_v1_copilot_proto_rawDescGZIP(), []int{17}
}

func (x *Planning) GetUpcomingScheduled() []*ScheduledTransaction {
	if x != nil {
		return x.UpcomingScheduled
	}
	return nil
}

func (x *Planning) GetActiveGoals() []*Goal {
	if x != nil {
		return x.ActiveGoals
	}
	return nil
}

func (x *Planning) GetActiveBudgets() []*Budget {
	if x != nil {
		return x.ActiveBudgets
	}
	return nil
}

func (x *Planning) GetProjections() []*MonthProjection {
	if x != nil {
		return x.Projections
	}
	return nil
}

type MonthProjection struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Month            *timestamppb.Timestamp `protobuf:"bytes,1,opt,name=month,proto3" json:"month,omitempty"`
	ProjectedIncome  string                 `protobuf:"bytes,2,opt,name=projected_income,json=projectedIncome,proto3" json:"projected_income,omitempty"`
	ProjectedExpense string                 `protobuf:"bytes,3,opt,name=projected_expense,json=projectedExpense,proto3" json:"projected_expense,omitempty"`
	BudgetAtRisk     bool                   `protobuf:"varint,4,opt,name=budget_at_risk,json=budgetAtRisk,proto3" json:"budget_at_risk,omitempty"`
	GoalsDue         string                 `protobuf:"bytes,5,opt,name=goals_due,json=goalsDue,proto3" json:"goals_due,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *MonthProjection) Reset() {
	*x = MonthProjection{}
	mi := &file_finpilot_v1_copilot_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MonthProjection) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MonthProjection) ProtoMessage() {}

func (x *MonthProjection) ProtoReflect() protoreflect.Message {
	mi := &file_finpilot_v1_copilot_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MonthProjection.ProtoReflect.Descriptor instead.
func (*MonthProjection) Descriptor() ([]byte, []int) {
	return file_finpilot_v1_copilot_proto_rawDescGZIP(), []int{18}
}

func (x *MonthProjection) GetMonth() *timestamppb.Timestamp {
	if x != nil {
		return x.Month
	}
	return nil
}

func (x *MonthProjection) GetProjectedIncome() string {
	if x != nil {
		return x.ProjectedIncome
	}
	return ""
}

func (x *MonthProjection) GetProjectedExpense() string {
	if x != nil {
		return x.ProjectedExpense
	}
	return ""
}

func (x *MonthProjection) GetBudgetAtRisk() bool {
	if x != nil {
		return x.BudgetAtRisk
	}
	return false
}

func (x *MonthProjection) GetGoalsDue() string {
	if x != nil {
		return x.GoalsDue
	}
	return ""
}

type Conversation struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Turns         []*ConversationTurn    `protobuf:"bytes,1,rep,name=turns,proto3" json:"turns,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Conversation) Reset() {
	*x = Conversation{}
	mi := &file_finpilot_v1_copilot_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Conversation) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Conversation) ProtoMessage() {}

func (x *Conversation) ProtoReflect() protoreflect.Message {
	mi := &file_finpilot_v1_copilot_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Conversation.ProtoReflect.Descriptor instead.
func (*Conversation) Descriptor() ([]byte, []int) {
	return file_finpilot_v1_copilot_proto_rawDescGZIP(), []int{19}
}

func (x *Conversation) GetTurns() []*ConversationTurn {
	if x != nil {
		return x.Turns
	}
	return nil
}

type ConversationTurn struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Intent        string                 `protobuf:"bytes,1,opt,name=intent,proto3" json:"intent,omitempty"`
	UserText      string                 `protobuf:"bytes,2,opt,name=user_text,json=userText,proto3" json:"user_text,omitempty"`
	ResultMessage string                 `protobuf:"bytes,3,opt,name=result_message,json=resultMessage,proto3" json:"result_message,omitempty"`
	Success       bool                   `protobuf:"varint,4,opt,name=success,proto3" json:"success,omitempty"`
	At            *timestamppb.Timestamp `protobuf:"bytes,5,opt,name=at,proto3" json:"at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ConversationTurn) Reset() {
	*x = ConversationTurn{}
	mi := &file_finpilot_v1_copilot_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConversationTurn) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConversationTurn) ProtoMessage() {}

func (x *ConversationTurn) ProtoReflect() protoreflect.Message {
	mi := &file_finpilot_v1_copilot_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConversationTurn.ProtoReflect.Descriptor instead.
func (*ConversationTurn) Descriptor() ([]byte, []int) {
	return file_finpilot_v1_copilot_proto_rawDescGZIP(), []int{20}
}

func (x *ConversationTurn) GetIntent() string {
	if x != nil {
		return x.Intent
	}
	return ""
}

func (x *ConversationTurn) GetUserText() string {
	if x != nil {
		return x.UserText
	}
	return ""
}

func (x *ConversationTurn) GetResultMessage() string {
	if x != nil {
		return x.ResultMessage
	}
	return ""
}

func (x *ConversationTurn) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *ConversationTurn) GetAt() *timestamppb.Timestamp {
	if x != nil {
		return x.At
	}
	return nil
}

type Transaction struct {
	state                protoimpl.MessageState `protogen:"open.v1"`
	Id                   string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	AccountId            string                 `protobuf:"bytes,2,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	CategoryId           string                 `protobuf:"bytes,3,opt,name=category_id,json=categoryId,proto3" json:"category_id,omitempty"`
	DestinationAccountId string                 `protobuf:"bytes,4,opt,name=destination_account_id,json=destinationAccountId,proto3" json:"destination_account_id,omitempty"`
	// RECEITA, DESPESA or TRANSFERENCIA
	Type          string                 `protobuf:"bytes,5,opt,name=type,proto3" json:"type,omitempty"`
	Amount        string                 `protobuf:"bytes,6,opt,name=amount,proto3" json:"amount,omitempty"`
	Description   string                 `protobuf:"bytes,7,opt,name=description,proto3" json:"description,omitempty"`
	CategoryName  string                 `protobuf:"bytes,8,opt,name=category_name,json=categoryName,proto3" json:"category_name,omitempty"`
	Date          *timestamppb.Timestamp `protobuf:"bytes,9,opt,name=date,proto3" json:"date,omitempty"`
	SeriesId      string                 `protobuf:"bytes,10,opt,name=series_id,json=seriesId,proto3" json:"series_id,omitempty"`
	InstallmentNo int32                  `protobuf:"varint,11,opt,name=installment_no,json=installmentNo,proto3" json:"installment_no,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Transaction) Reset() {
	*x = Transaction{}
	mi := &file_finpilot_v1_copilot_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Transaction) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Transaction) ProtoMessage() {}

func (x *Transaction) ProtoReflect() protoreflect.Message {
	mi := &file_finpilot_v1_copilot_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Transaction.ProtoReflect.Descriptor instead.
func (*Transaction) Descriptor() ([]byte, []int) {
	return file_finpilot_v1_copilot_proto_rawDescGZIP(), []int{21}
}

func (x *Transaction) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Transaction) GetAccountId() string {
	if x != nil {
		return x.AccountId
	}
	return ""
}

func (x *Transaction) GetCategoryId() string {
	if x != nil {
		return x.CategoryId
	}
	return ""
}

func (x *Transaction) GetDestinationAccountId() string {
	if x != nil {
		return x.DestinationAccountId
	}
	return ""
}

func (x *Transaction) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *Transaction) GetAmount() string {
	if x != nil {
		return x.Amount
	}
	return ""
}

func (x *Transaction) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Transaction) GetCategoryName() string {
	if x != nil {
		return x.CategoryName
	}
	return ""
}

func (x *Transaction) GetDate() *timestamppb.Timestamp {
	if x != nil {
		return x.Date
	}
	return nil
}

func (x *Transaction) GetSeriesId() string {
	if x != nil {
		return x.SeriesId
	}
	return ""
}

func (x *Transaction) GetInstallmentNo() int32 {
	if x != nil {
		return x.InstallmentNo
	}
	return 0
}

type ScheduledTransaction struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Description   string                 `protobuf:"bytes,2,opt,name=description,proto3" json:"description,omitempty"`
	Type          string                 `protobuf:"bytes,3,opt,name=type,proto3" json:"type,omitempty"`
	Amount        string                 `protobuf:"bytes,4,opt,name=amount,proto3" json:"amount,omitempty"`
	DueDate       *timestamppb.Timestamp `protobuf:"bytes,5,opt,name=due_date,json=dueDate,proto3" json:"due_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ScheduledTransaction) Reset() {
	*x = ScheduledTransaction{}
	mi := &file_finpilot_v1_copilot_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScheduledTransaction) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScheduledTransaction) ProtoMessage() {}

func (x *ScheduledTransaction) ProtoReflect() protoreflect.Message {
	mi := &file_finpilot_v1_copilot_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScheduledTransaction.ProtoReflect.Descriptor instead.
func (*ScheduledTransaction) Descriptor() ([]byte, []int) {
	return file_finpilot_v1_copilot_proto_rawDescGZIP(), []int{22}
}

func (x *ScheduledTransaction) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ScheduledTransaction) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *ScheduledTransaction) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *ScheduledTransaction) GetAmount() string {
	if x != nil {
		return x.Amount
	}
	return ""
}

func (x *ScheduledTransaction) GetDueDate() *timestamppb.Timestamp {
	if x != nil {
		return x.DueDate
	}
	return nil
}

type Account struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Type          string                 `protobuf:"bytes,3,opt,name=type,proto3" json:"type,omitempty"`
	Balance       string                 `protobuf:"bytes,4,opt,name=balance,proto3" json:"balance,omitempty"`
	IsDefault     bool                   `protobuf:"varint,5,opt,name=is_default,json=isDefault,proto3" json:"is_default,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Account) Reset() {
	*x = Account{}
	mi := &file_finpilot_v1_copilot_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Account) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Account) ProtoMessage() {}

func (x *Account) ProtoReflect() protoreflect.Message {
	mi := &file_finpilot_v1_copilot_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Account.ProtoReflect.Descriptor instead.
func (*Account) Descriptor() ([]byte, []int) {
	return file_finpilot_v1_copilot_proto_rawDescGZIP(), []int{23}
}

func (x *Account) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Account) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Account) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *Account) GetBalance() string {
	if x != nil {
		return x.Balance
	}
	return ""
}

func (x *Account) GetIsDefault() bool {
	if x != nil {
		return x.IsDefault
	}
	return false
}

type Category struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Id    string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name  string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	// RECEITA or DESPESA
	Kind          string `protobuf:"bytes,3,opt,name=kind,proto3" json:"kind,omitempty"`
	IsPreferred   bool   `protobuf:"varint,4,opt,name=is_preferred,json=isPreferred,proto3" json:"is_preferred,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Category) Reset() {
	*x = Category{}
	mi := &file_finpilot_v1_copilot_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Category) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Category) ProtoMessage() {}

func (x *Category) ProtoReflect() protoreflect.Message {
	mi := &file_finpilot_v1_copilot_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Category.ProtoReflect.Descriptor instead.
func (*Category) Descriptor() ([]byte, []int) {
	return file_finpilot_v1_copilot_proto_rawDescGZIP(), []int{24}
}

func (x *Category) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Category) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Category) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *Category) GetIsPreferred() bool {
	if x != nil {
		return x.IsPreferred
	}
	return false
}

type Goal struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	TargetAmount  string                 `protobuf:"bytes,3,opt,name=target_amount,json=targetAmount,proto3" json:"target_amount,omitempty"`
	SavedAmount   string                 `protobuf:"bytes,4,opt,name=saved_amount,json=savedAmount,proto3" json:"saved_amount,omitempty"`
	Deadline      *timestamppb.Timestamp `protobuf:"bytes,5,opt,name=deadline,proto3" json:"deadline,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Goal) Reset() {
	*x = Goal{}
	mi := &file_finpilot_v1_copilot_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Goal) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Goal) ProtoMessage() {}

func (x *Goal) ProtoReflect() protoreflect.Message {
	mi := &file_finpilot_v1_copilot_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Goal.ProtoReflect.Descriptor instead.
func (*Goal) Descriptor() ([]byte, []int) {
	return file_finpilot_v1_copilot_proto_rawDescGZIP(), []int{25}
}

func (x *Goal) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Goal) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Goal) GetTargetAmount() string {
	if x != nil {
		return x.TargetAmount
	}
	return ""
}

func (x *Goal) GetSavedAmount() string {
	if x != nil {
		return x.SavedAmount
	}
	return ""
}

func (x *Goal) GetDeadline() *timestamppb.Timestamp {
	if x != nil {
		return x.Deadline
	}
	return nil
}

type Budget struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	CategoryId    string                 `protobuf:"bytes,2,opt,name=category_id,json=categoryId,proto3" json:"category_id,omitempty"`
	CategoryName  string                 `protobuf:"bytes,3,opt,name=category_name,json=categoryName,proto3" json:"category_name,omitempty"`
	Ceiling       string                 `protobuf:"bytes,4,opt,name=ceiling,proto3" json:"ceiling,omitempty"`
	Month         *timestamppb.Timestamp `protobuf:"bytes,5,opt,name=month,proto3" json:"month,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Budget) Reset() {
	*x = Budget{}
	mi := &file_finpilot_v1_copilot_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Budget) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Budget) ProtoMessage() {}

func (x *Budget) ProtoReflect() protoreflect.Message {
	mi := &file_finpilot_v1_copilot_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Budget.ProtoReflect.Descriptor instead.
func (*Budget) Descriptor() ([]byte, []int) {
	return file_finpilot_v1_copilot_proto_rawDescGZIP(), []int{26}
}

func (x *Budget) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Budget) GetCategoryId() string {
	if x != nil {
		return x.CategoryId
	}
	return ""
}

func (x *Budget) GetCategoryName() string {
	if x != nil {
		return x.CategoryName
	}
	return ""
}

func (x *Budget) GetCeiling() string {
	if x != nil {
		return x.Ceiling
	}
	return ""
}

func (x *Budget) GetMonth() *timestamppb.Timestamp {
	if x != nil {
		return x.Month
	}
	return nil
}

var File_finpilot_v1_copilot_proto protoreflect.FileDescriptor

const file_finpilot_v1_copilot_proto_rawDesc = "" +
	"\n" +
	"\x19finpilot/v1/copilot.proto\x12\vfinpilot.v1\x1a\x1fgoogle/protobuf/timestamp.proto\".\n" +
	"\x13BuildContextRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\"O\n" +
	"\x14BuildContextResponse\x127\n" +
	"\acontext\x18\x01 \x01(\v2\x1d.finpilot.v1.FinancialContextR\acontext\"\xa7\x01\n" +
	"\x15ExecuteCommandRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x16\n" +
	"\x06intent\x18\x02 \x01(\tR\x06intent\x12#\n" +
	"\roriginal_text\x18\x03 \x01(\tR\foriginalText\x128\n" +
	"\bentities\x18\x04 \x01(\v2\x1c.finpilot.v1.CommandEntitiesR\bentities\"\xea\x01\n" +
	"\x0fCommandEntities\x12\x14\n" +
	"\x05valor\x18\x01 \x01(\tR\x05valor\x12\x1c\n" +
	"\tcategoria\x18\x02 \x01(\tR\tcategoria\x12\x14\n" +
	"\x05conta\x18\x03 \x01(\tR\x05conta\x12#\n" +
	"\rconta_destino\x18\x04 \x01(\tR\fcontaDestino\x12.\n" +
	"\x04data\x18\x05 \x01(\v2\x1a.google.protobuf.TimestampR\x04data\x12\x1c\n" +
	"\tdescricao\x18\x06 \x01(\tR\tdescricao\x12\x1a\n" +
	"\bparcelas\x18\a \x01(\x05R\bparcelas\"\xa7\x01\n" +
	"\x16ExecuteCommandResponse\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x12\x18\n" +
	"\amessage\x18\x02 \x01(\tR\amessage\x12\x16\n" +
	"\x06impact\x18\x03 \x01(\tR\x06impact\x12 \n" +
	"\vsuggestions\x18\x04 \x03(\tR\vsuggestions\x12!\n" +
	"\foperation_id\x18\x05 \x01(\tR\voperationId\"4\n" +
	"\x0fRollbackRequest\x12!\n" +
	"\foperation_id\x18\x01 \x01(\tR\voperationId\"\x12\n" +
	"\x10RollbackResponse\"F\n" +
	"\x15SearchRelevantRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x14\n" +
	"\x05query\x18\x02 \x01(\tR\x05query\"\x97\x02\n" +
	"\x16SearchRelevantResponse\x12<\n" +
	"\ftransactions\x18\x01 \x03(\v2\x18.finpilot.v1.TransactionR\ftransactions\x120\n" +
	"\baccounts\x18\x02 \x03(\v2\x14.finpilot.v1.AccountR\baccounts\x125\n" +
	"\n" +
	"categories\x18\x03 \x03(\v2\x15.finpilot.v1.CategoryR\n" +
	"categories\x12'\n" +
	"\x05goals\x18\x04 \x03(\v2\x11.finpilot.v1.GoalR\x05goals\x12-\n" +
	"\abudgets\x18\x05 \x03(\v2\x13.finpilot.v1.BudgetR\abudgets\"\xf3\x02\n" +
	"\x10FinancialContext\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x125\n" +
	"\bbuilt_at\x18\x02 \x01(\v2\x1a.google.protobuf.TimestampR\abuiltAt\x124\n" +
	"\tpatrimony\x18\x03 \x01(\v2\x16.finpilot.v1.PatrimonyR\tpatrimony\x127\n" +
	"\n" +
	"indicators\x18\x04 \x01(\v2\x17.finpilot.v1.IndicatorsR\n" +
	"indicators\x12.\n" +
	"\ahistory\x18\x05 \x01(\v2\x14.finpilot.v1.HistoryR\ahistory\x121\n" +
	"\bplanning\x18\x06 \x01(\v2\x15.finpilot.v1.PlanningR\bplanning\x12=\n" +
	"\fconversation\x18\a \x01(\v2\x19.finpilot.v1.ConversationR\fconversation\"\x96\x01\n" +
	"\tPatrimony\x12#\n" +
	"\rtotal_balance\x18\x01 \x01(\tR\ftotalBalance\x12+\n" +
	"\x11projected_balance\x18\x02 \x01(\tR\x10projectedBalance\x127\n" +
	"\baccounts\x18\x03 \x03(\v2\x1b.finpilot.v1.AccountBalanceR\baccounts\"|\n" +
	"\x0eAccountBalance\x12\x1d\n" +
	"\n" +
	"account_id\x18\x01 \x01(\tR\taccountId\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x18\n" +
	"\abalance\x18\x03 \x01(\tR\abalance\x12\x1d\n" +
	"\n" +
	"is_default\x18\x04 \x01(\bR\tisDefault\"\x9c\x02\n" +
	"\n" +
	"Indicators\x12!\n" +
	"\fmonth_income\x18\x01 \x01(\tR\vmonthIncome\x12#\n" +
	"\rmonth_expense\x18\x02 \x01(\tR\fmonthExpense\x12\x19\n" +
	"\bnet_flow\x18\x03 \x01(\tR\anetFlow\x120\n" +
	"\x06health\x18\x04 \x01(\v2\x18.finpilot.v1.HealthScoreR\x06health\x120\n" +
	"\x06trends\x18\x05 \x03(\v2\x18.finpilot.v1.TrendRecordR\x06trends\x12G\n" +
	"\x10month_comparison\x18\x06 \x01(\v2\x1c.finpilot.v1.MonthComparisonR\x0fmonthComparison\"}\n" +
	"\vHealthScore\x12\x14\n" +
	"\x05score\x18\x01 \x01(\x05R\x05score\x12\x14\n" +
	"\x05level\x18\x02 \x01(\tR\x05level\x12\x18\n" +
	"\afactors\x18\x03 \x03(\tR\afactors\x12(\n" +
	"\x0frecommendations\x18\x04 \x03(\tR\x0frecommendations\"\x8a\x02\n" +
	"\vTrendRecord\x12\x1f\n" +
	"\vcategory_id\x18\x01 \x01(\tR\n" +
	"categoryId\x12#\n" +
	"\rcategory_name\x18\x02 \x01(\tR\fcategoryName\x12.\n" +
	"\x13mean_monthly_amount\x18\x03 \x01(\tR\x11meanMonthlyAmount\x120\n" +
	"\x14current_month_amount\x18\x04 \x01(\tR\x12currentMonthAmount\x12+\n" +
	"\x11percent_deviation\x18\x05 \x01(\x01R\x10percentDeviation\x12&\n" +
	"\x0eclassification\x18\x06 \x01(\tR\x0eclassification\"\xbd\x02\n" +
	"\x0fMonthComparison\x12%\n" +
	"\x0ecurrent_income\x18\x01 \x01(\tR\rcurrentIncome\x12'\n" +
	"\x0fcurrent_expense\x18\x02 \x01(\tR\x0ecurrentExpense\x12'\n" +
	"\x0fprevious_income\x18\x03 \x01(\tR\x0epreviousIncome\x12)\n" +
	"\x10previous_expense\x18\x04 \x01(\tR\x0fpreviousExpense\x12*\n" +
	"\x11income_change_pct\x18\x05 \x01(\x01R\x0fincomeChangePct\x12,\n" +
	"\x12expense_change_pct\x18\x06 \x01(\x01R\x10expenseChangePct\x12,\n" +
	"\x12savings_change_pct\x18\a \x01(\x01R\x10savingsChangePct\"\xae\x01\n" +
	"\aHistory\x12I\n" +
	"\x13recent_transactions\x18\x01 \x03(\v2\x18.finpilot.v1.TransactionR\x12recentTransactions\x121\n" +
	"\x14preferred_categories\x18\x02 \x03(\tR\x13preferredCategories\x12%\n" +
	"\x0etop_categories\x18\x03 \x03(\tR\rtopCategories\"\x8e\x02\n" +
	"\bPlanning\x12P\n" +
	"\x12upcoming_scheduled\x18\x01 \x03(\v2!.finpilot.v1.ScheduledTransactionR\x11upcomingScheduled\x124\n" +
	"\factive_goals\x18\x02 \x03(\v2\x11.finpilot.v1.GoalR\vactiveGoals\x12:\n" +
	"\x0eactive_budgets\x18\x03 \x03(\v2\x13.finpilot.v1.BudgetR\ractiveBudgets\x12>\n" +
	"\vprojections\x18\x04 \x03(\v2\x1c.finpilot.v1.MonthProjectionR\vprojections\"\xde\x01\n" +
	"\x0fMonthProjection\x120\n" +
	"\x05month\x18\x01 \x01(\v2\x1a.google.protobuf.TimestampR\x05month\x12)\n" +
	"\x10projected_income\x18\x02 \x01(\tR\x0fprojectedIncome\x12+\n" +
	"\x11projected_expense\x18\x03 \x01(\tR\x10projectedExpense\x12$\n" +
	"\x0ebudget_at_risk\x18\x04 \x01(\bR\fbudgetAtRisk\x12\x1b\n" +
	"\tgoals_due\x18\x05 \x01(\tR\bgoalsDue\"C\n" +
	"\fConversation\x123\n" +
	"\x05turns\x18\x01 \x03(\v2\x1d.finpilot.v1.ConversationTurnR\x05turns\"\xb4\x01\n" +
	"\x10ConversationTurn\x12\x16\n" +
	"\x06intent\x18\x01 \x01(\tR\x06intent\x12\x1b\n" +
	"\tuser_text\x18\x02 \x01(\tR\buserText\x12%\n" +
	"\x0eresult_message\x18\x03 \x01(\tR\rresultMessage\x12\x18\n" +
	"\asuccess\x18\x04 \x01(\bR\asuccess\x12*\n" +
	"\x02at\x18\x05 \x01(\v2\x1a.google.protobuf.TimestampR\x02at\"\xfa\x02\n" +
	"\vTransaction\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"account_id\x18\x02 \x01(\tR\taccountId\x12\x1f\n" +
	"\vcategory_id\x18\x03 \x01(\tR\n" +
	"categoryId\x124\n" +
	"\x16destination_account_id\x18\x04 \x01(\tR\x14destinationAccountId\x12\x12\n" +
	"\x04type\x18\x05 \x01(\tR\x04type\x12\x16\n" +
	"\x06amount\x18\x06 \x01(\tR\x06amount\x12 \n" +
	"\vdescription\x18\a \x01(\tR\vdescription\x12#\n" +
	"\rcategory_name\x18\b \x01(\tR\fcategoryName\x12.\n" +
	"\x04date\x18\t \x01(\v2\x1a.google.protobuf.TimestampR\x04date\x12\x1b\n" +
	"\tseries_id\x18\n" +
	" \x01(\tR\bseriesId\x12%\n" +
	"\x0einstallment_no\x18\v \x01(\x05R\rinstallmentNo\"\xab\x01\n" +
	"\x14ScheduledTransaction\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12 \n" +
	"\vdescription\x18\x02 \x01(\tR\vdescription\x12\x12\n" +
	"\x04type\x18\x03 \x01(\tR\x04type\x12\x16\n" +
	"\x06amount\x18\x04 \x01(\tR\x06amount\x125\n" +
	"\bdue_date\x18\x05 \x01(\v2\x1a.google.protobuf.TimestampR\adueDate\"z\n" +
	"\aAccount\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x12\n" +
	"\x04type\x18\x03 \x01(\tR\x04type\x12\x18\n" +
	"\abalance\x18\x04 \x01(\tR\abalance\x12\x1d\n" +
	"\n" +
	"is_default\x18\x05 \x01(\bR\tisDefault\"e\n" +
	"\bCategory\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x12\n" +
	"\x04kind\x18\x03 \x01(\tR\x04kind\x12!\n" +
	"\fis_preferred\x18\x04 \x01(\bR\visPreferred\"\xaa\x01\n" +
	"\x04Goal\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12#\n" +
	"\rtarget_amount\x18\x03 \x01(\tR\ftargetAmount\x12!\n" +
	"\fsaved_amount\x18\x04 \x01(\tR\vsavedAmount\x126\n" +
	"\bdeadline\x18\x05 \x01(\v2\x1a.google.protobuf.TimestampR\bdeadline\"\xaa\x01\n" +
	"\x06Budget\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vcategory_id\x18\x02 \x01(\tR\n" +
	"categoryId\x12#\n" +
	"\rcategory_name\x18\x03 \x01(\tR\fcategoryName\x12\x18\n" +
	"\aceiling\x18\x04 \x01(\tR\aceiling\x120\n" +
	"\x05month\x18\x05 \x01(\v2\x1a.google.protobuf.TimestampR\x05month2\xe5\x02\n" +
	"\x0fFinPilotService\x12S\n" +
	"\fBuildContext\x12 .finpilot.v1.BuildContextRequest\x1a!.finpilot.v1.BuildContextResponse\x12Y\n" +
	"\x0eExecuteCommand\x12\".finpilot.v1.ExecuteCommandRequest\x1a#.finpilot.v1.ExecuteCommandResponse\x12G\n" +
	"\bRollback\x12\x1c.finpilot.v1.RollbackRequest\x1a\x1d.finpilot.v1.RollbackResponse\x12Y\n" +
	"\x0eSearchRelevant\x12\".finpilot.v1.SearchRelevantRequest\x1a#.finpilot.v1.SearchRelevantResponseBYZWgithub.com/rafaelcoutinho/finpilot-backend/internal/adapter/grpc/finpilot/v1;finpilotv1b\x06proto3"

var (
	file_finpilot_v1_copilot_proto_rawDescOnce sync.Once
	file_finpilot_v1_copilot_proto_rawDescData []byte
)

func file_finpilot_v1_copilot_proto_rawDescGZIP() []byte {
	file_finpilot_v1_copilot_proto_rawDescOnce.Do(func() {
		file_finpilot_v1_copilot_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_finpilot_v1_copilot_proto_rawDesc), len(file_finpilot_v1_copilot_proto_rawDesc)))
	})
	return file_finpilot_v1_copilot_proto_rawDescData
}

var file_finpilot_v1_copilot_proto_msgTypes = make([]protoimpl.MessageInfo, 27)
var file_finpilot_v1_copilot_proto_goTypes = []any{
	(*BuildContextRequest)(nil),    // 0: finpilot.v1.BuildContextRequest
	(*BuildContextResponse)(nil),   // 1: finpilot.v1.BuildContextResponse
	(*ExecuteCommandRequest)(nil),  // 2: finpilot.v1.ExecuteCommandRequest
	(*CommandEntities)(nil),        // 3: finpilot.v1.CommandEntities
	(*ExecuteCommandResponse)(nil), // 4: finpilot.v1.ExecuteCommandResponse
	(*RollbackRequest)(nil),        // 5: finpilot.v1.RollbackRequest
	(*RollbackResponse)(nil),       // 6: finpilot.v1.RollbackResponse
	(*SearchRelevantRequest)(nil),  // 7: finpilot.v1.SearchRelevantRequest
	(*SearchRelevantResponse)(nil), // 8: finpilot.v1.SearchRelevantResponse
	(*FinancialContext)(nil),       // 9: finpilot.v1.FinancialContext
	(*Patrimony)(nil),              // 10: finpilot.v1.Patrimony
	(*AccountBalance)(nil),         // 11: finpilot.v1.AccountBalance
	(*Indicators)(nil),             // 12: finpilot.v1.Indicators
	(*HealthScore)(nil),            // 13: finpilot.v1.HealthScore
	(*TrendRecord)(nil),            // 14: finpilot.v1.TrendRecord
	(*MonthComparison)(nil),        // 15: finpilot.v1.MonthComparison
	(*History)(nil),                // 16: finpilot.v1.History
	(*Planning)(nil),               // 17: finpilot.v1.Planning
	(*MonthProjection)(nil),        // 18: finpilot.v1.MonthProjection
	(*Conversation)(nil),           // 19: finpilot.v1.Conversation
	(*ConversationTurn)(nil),       // 20: finpilot.v1.ConversationTurn
	(*Transaction)(nil),            // 21: finpilot.v1.Transaction
	(*ScheduledTransaction)(nil),   // 22: finpilot.v1.ScheduledTransaction
	(*Account)(nil),                // 23: finpilot.v1.Account
	(*Category)(nil),               // 24: finpilot.v1.Category
	(*Goal)(nil),                   // 25: finpilot.v1.Goal
	(*Budget)(nil),                 // 26: finpilot.v1.Budget
	(*timestamppb.Timestamp)(nil),  // 27: google.protobuf.Timestamp
}
var file_finpilot_v1_copilot_proto_depIdxs = []int32{
	9,  // 0: finpilot.v1.BuildContextResponse.context:type_name -> finpilot.v1.FinancialContext
	3,  // 1: finpilot.v1.ExecuteCommandRequest.entities:type_name -> finpilot.v1.CommandEntities
	27, // 2: finpilot.v1.CommandEntities.data:type_name -> google.protobuf.Timestamp
	21, // 3: finpilot.v1.SearchRelevantResponse.transactions:type_name -> finpilot.v1.Transaction
	23, // 4: finpilot.v1.SearchRelevantResponse.accounts:type_name -> finpilot.v1.Account
	24, // 5: finpilot.v1.SearchRelevantResponse.categories:type_name -> finpilot.v1.Category
	25, // 6: finpilot.v1.SearchRelevantResponse.goals:type_name -> finpilot.v1.Goal
	26, // 7: finpilot.v1.SearchRelevantResponse.budgets:type_name -> finpilot.v1.Budget
	27, // 8: finpilot.v1.FinancialContext.built_at:type_name -> google.protobuf.Timestamp
	10, // 9: finpilot.v1.FinancialContext.patrimony:type_name -> finpilot.v1.Patrimony
	12, // 10: finpilot.v1.FinancialContext.indicators:type_name -> finpilot.v1.Indicators
	16, // 11: finpilot.v1.FinancialContext.history:type_name -> finpilot.v1.History
	17, // 12: finpilot.v1.FinancialContext.planning:type_name -> finpilot.v1.Planning
	19, // 13: finpilot.v1.FinancialContext.conversation:type_name -> finpilot.v1.Conversation
	11, // 14: finpilot.v1.Patrimony.accounts:type_name -> finpilot.v1.AccountBalance
	13, // 15: finpilot.v1.Indicators.health:type_name -> finpilot.v1.HealthScore
	14, // 16: finpilot.v1.Indicators.trends:type_name -> finpilot.v1.TrendRecord
	15, // 17: finpilot.v1.Indicators.month_comparison:type_name -> finpilot.v1.MonthComparison
	21, // 18: finpilot.v1.History.recent_transactions:type_name -> finpilot.v1.Transaction
	22, // 19: finpilot.v1.Planning.upcoming_scheduled:type_name -> finpilot.v1.ScheduledTransaction
	25, // 20: finpilot.v1.Planning.active_goals:type_name -> finpilot.v1.Goal
	26, // 21: finpilot.v1.Planning.active_budgets:type_name -> finpilot.v1.Budget
	18, // 22: finpilot.v1.Planning.projections:type_name -> finpilot.v1.MonthProjection
	27, // 23: finpilot.v1.MonthProjection.month:type_name -> google.protobuf.Timestamp
	20, // 24: finpilot.v1.Conversation.turns:type_name -> finpilot.v1.ConversationTurn
	27, // 25: finpilot.v1.ConversationTurn.at:type_name -> google.protobuf.Timestamp
	27, // 26: finpilot.v1.Transaction.date:type_name -> google.protobuf.Timestamp
	27, // 27: finpilot.v1.ScheduledTransaction.due_date:type_name -> google.protobuf.Timestamp
	27, // 28: finpilot.v1.Goal.deadline:type_name -> google.protobuf.Timestamp
	27, // 29: finpilot.v1.Budget.month:type_name -> google.protobuf.Timestamp
	0,  // 30: finpilot.v1.FinPilotService.BuildContext:input_type -> finpilot.v1.BuildContextRequest
	2,  // 31: finpilot.v1.FinPilotService.ExecuteCommand:input_type -> finpilot.v1.ExecuteCommandRequest
	5,  // 32: finpilot.v1.FinPilotService.Rollback:input_type -> finpilot.v1.RollbackRequest
	7,  // 33: finpilot.v1.FinPilotService.SearchRelevant:input_type -> finpilot.v1.SearchRelevantRequest
	1,  // 34: finpilot.v1.FinPilotService.BuildContext:output_type -> finpilot.v1.BuildContextResponse
	4,  // 35: finpilot.v1.FinPilotService.ExecuteCommand:output_type -> finpilot.v1.ExecuteCommandResponse
	6,  // 36: finpilot.v1.FinPilotService.Rollback:output_type -> finpilot.v1.RollbackResponse
	8,  // 37: finpilot.v1.FinPilotService.SearchRelevant:output_type -> finpilot.v1.SearchRelevantResponse
	34, // [34:38] is the sub-list for method output_type
	30, // [30:34] is the sub-list for method input_type
	30, // [30:30] is the sub-list for extension type_name
	30, // [30:30] is the sub-list for extension extendee
	0,  // [0:30] is the sub-list for field type_name
}

func init() { file_finpilot_v1_copilot_proto_init() }
func file_finpilot_v1_copilot_proto_init() {
	if File_finpilot_v1_copilot_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_finpilot_v1_copilot_proto_rawDesc), len(file_finpilot_v1_copilot_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   27,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_finpilot_v1_copilot_proto_goTypes,
		DependencyIndexes: file_finpilot_v1_copilot_proto_depIdxs,
		MessageInfos:      file_finpilot_v1_copilot_proto_msgTypes,
	}.Build()
	File_finpilot_v1_copilot_proto = out.File
	file_finpilot_v1_copilot_proto_goTypes = nil
	file_finpilot_v1_copilot_proto_depIdxs = nil
}
